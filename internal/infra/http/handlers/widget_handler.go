package handlers

import (
	"bytes"
	"net/http"
	"text/template"

	"github.com/go-chi/chi/v5"

	"github.com/zapcapta/zapcapta-api/internal/usecase"
)

// widgetScript é o script embutível gerado por site: desenha o botão de
// WhatsApp, coleta o formulário e faz o POST em /submit com a URL da página
// e o referrer (insumos do classificador de origem).
const widgetScript = `(function () {
  var SITE_ID = "{{.SiteID}}";
  var API_URL = "{{.APIBaseURL}}";
  var btn = document.createElement("div");
  btn.id = "zc-widget-btn";
  btn.style.cssText = "position:fixed;bottom:20px;{{if eq .Position "bottom-left"}}left{{else}}right{{end}}:20px;width:56px;height:56px;border-radius:50%;background:{{.ButtonColor}};cursor:pointer;z-index:99999;box-shadow:0 2px 8px rgba(0,0,0,.3);";
  var open = false;
  var box = document.createElement("div");
  box.id = "zc-widget-box";
  box.style.cssText = "display:none;position:fixed;bottom:88px;{{if eq .Position "bottom-left"}}left{{else}}right{{end}}:20px;width:280px;background:#fff;border-radius:8px;padding:16px;z-index:99999;box-shadow:0 4px 16px rgba(0,0,0,.25);font-family:sans-serif;";
  box.innerHTML =
    '<p style="margin:0 0 8px;font-size:14px;">{{.WelcomeMessage}}</p>' +
    '<input id="zc-name" placeholder="Nome" style="width:100%;margin-bottom:6px;padding:6px;" />' +
    '<input id="zc-email" placeholder="E-mail" style="width:100%;margin-bottom:6px;padding:6px;" />' +
    '<input id="zc-phone" placeholder="WhatsApp" style="width:100%;margin-bottom:6px;padding:6px;" />' +
    '<textarea id="zc-msg" placeholder="Mensagem" style="width:100%;margin-bottom:6px;padding:6px;"></textarea>' +
    '<button id="zc-send" style="width:100%;padding:8px;background:{{.ButtonColor}};color:#fff;border:none;border-radius:4px;cursor:pointer;">Chamar no WhatsApp</button>';
  btn.onclick = function () {
    open = !open;
    box.style.display = open ? "block" : "none";
  };
  document.body.appendChild(btn);
  document.body.appendChild(box);
  box.querySelector("#zc-send").onclick = function () {
    var data = new URLSearchParams();
    data.append("site_id", SITE_ID);
    data.append("name", document.getElementById("zc-name").value);
    data.append("email", document.getElementById("zc-email").value);
    data.append("phone", document.getElementById("zc-phone").value);
    data.append("message", document.getElementById("zc-msg").value);
    data.append("page_url", window.location.href);
    data.append("referrer_url", document.referrer);
    fetch(API_URL + "/submit", { method: "POST", body: data }).then(function () {
      window.open("https://wa.me/{{.WhatsAppNumber}}?text=" + encodeURIComponent(document.getElementById("zc-msg").value), "_blank");
      box.style.display = "none";
    });
  };
})();
`

var widgetTemplate = template.Must(template.New("widget").Parse(widgetScript))

type widgetData struct {
	SiteID         string
	APIBaseURL     string
	ButtonColor    string
	Position       string
	WelcomeMessage string
	WhatsAppNumber string
}

type WidgetHandler struct {
	siteRepo   usecase.SiteRepositoryInterface
	apiBaseURL string
}

func NewWidgetHandler(siteRepo usecase.SiteRepositoryInterface, apiBaseURL string) *WidgetHandler {
	return &WidgetHandler{
		siteRepo:   siteRepo,
		apiBaseURL: apiBaseURL,
	}
}

// HandleScript serve GET /widget/{siteId}.js com o script montado a partir
// da configuração do site.
func (h *WidgetHandler) HandleScript(w http.ResponseWriter, r *http.Request) {
	siteID := chi.URLParam(r, "siteId")

	site, err := h.siteRepo.FindByID(r.Context(), siteID)
	if err != nil {
		http.Error(w, "site não encontrado", http.StatusNotFound)
		return
	}
	if !site.Active {
		http.Error(w, "site desativado", http.StatusGone)
		return
	}

	var buf bytes.Buffer
	err = widgetTemplate.Execute(&buf, widgetData{
		SiteID:         site.ID,
		APIBaseURL:     h.apiBaseURL,
		ButtonColor:    site.Widget.ButtonColor,
		Position:       site.Widget.Position,
		WelcomeMessage: site.Widget.WelcomeMessage,
		WhatsAppNumber: site.WhatsAppNumber,
	})
	if err != nil {
		http.Error(w, "falha ao gerar script", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=300")
	w.Write(buf.Bytes())
}
