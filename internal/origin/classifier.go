// Package origin classifica a origem de tráfego de um lead a partir da URL
// da página e, opcionalmente, do referrer. Função pura: mesma entrada,
// mesma saída, nunca retorna erro.
package origin

import (
	"net/url"
	"regexp"
	"strings"
)

// Rótulos do conjunto fechado de origens.
const (
	MetaAds       = "Meta Ads"
	GoogleAds     = "Google Ads"
	Instagram     = "Instagram"
	Facebook      = "Facebook"
	GoogleOrganic = "Google Organico"
	Organic       = "Tráfego Orgânico"
	UTMCampaign   = "UTM Campaign"
	Direct        = "Tráfego Direto"

	// CampaignNotInformed é o sentinela usado no lugar de campanha vazia,
	// para que a agregação nunca precise tratar nulo.
	CampaignNotInformed = "Não informado"
)

type Classification struct {
	Origin   string `json:"origin"`
	Campaign string `json:"campaign"`
}

// Classify avalia apenas a URL da página (caminho usado no reprocessamento
// de URLs históricas, onde o referrer não foi gravado).
func Classify(pageURL string) Classification {
	return ClassifyWithReferrer(pageURL, "")
}

// ClassifyWithReferrer avalia a URL da página e o referrer, na ordem de
// precedência abaixo. A primeira regra que casar vence.
func ClassifyWithReferrer(pageURL, referrerURL string) Classification {
	params := extractParams(pageURL)

	utmSource := strings.ToLower(params["utm_source"])
	utmMedium := strings.ToLower(params["utm_medium"])

	switch {
	case params["fbclid"] != "":
		return Classification{MetaAds, firstNonEmpty(params["utm_campaign"], params["utm_content"])}

	case utmSource == "google" && utmMedium == "cpc":
		return Classification{GoogleAds, firstNonEmpty(params["utm_campaign"], params["utm_term"], params["utm_content"])}

	case (utmSource == "facebook" || utmSource == "instagram") && utmMedium == "cpc":
		return Classification{MetaAds, firstNonEmpty(params["utm_campaign"], params["utm_content"])}

	case utmSource == "instagram":
		return Classification{Instagram, firstNonEmpty(params["utm_campaign"], params["utm_content"])}

	case utmSource == "meta":
		return Classification{MetaAds, firstNonEmpty(params["utm_campaign"], params["utm_content"])}

	case params["srsltid"] != "":
		return Classification{Organic, CampaignNotInformed}

	case params["gclid"] != "" || params["gad_source"] != "":
		return Classification{GoogleAds, firstNonEmpty(params["utm_campaign"], params["utm_term"], params["utm_content"])}

	case utmSource != "":
		return Classification{UTMCampaign, firstNonEmpty(params["utm_campaign"], params["utm_content"])}
	}

	if referrerURL != "" {
		if c, ok := classifyReferrer(referrerURL, params); ok {
			return c
		}
	}

	return Classification{Direct, CampaignNotInformed}
}

// classifyReferrer decide pelo hostname do referrer quando a página não
// carrega nenhum sinal de UTM/click-id. Os redirecionadores l.facebook.com e
// l.instagram.com são testados antes dos domínios base, senão a regra nunca
// seria alcançada ("l.facebook.com" contém "facebook.com").
func classifyReferrer(referrerURL string, params map[string]string) (Classification, bool) {
	host := referrerHost(referrerURL)
	if host == "" {
		return Classification{}, false
	}

	switch {
	case strings.Contains(host, "l.facebook.com") || strings.Contains(host, "l.instagram.com"):
		return Classification{MetaAds, firstNonEmpty(params["utm_campaign"], params["utm_content"])}, true
	case strings.Contains(host, "google."):
		return Classification{GoogleOrganic, CampaignNotInformed}, true
	case strings.Contains(host, "facebook.com") || strings.Contains(host, "fb.com"):
		return Classification{Facebook, CampaignNotInformed}, true
	case strings.Contains(host, "instagram.com"):
		return Classification{Instagram, CampaignNotInformed}, true
	}

	return Classification{}, false
}

func referrerHost(raw string) string {
	u, err := url.Parse(raw)
	if err == nil && u.Host != "" {
		return strings.ToLower(u.Host)
	}

	// Referrer malformado ou sem scheme: extrai o host na unha.
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.TrimPrefix(s, "https://")
	s = strings.TrimPrefix(s, "http://")
	if i := strings.IndexAny(s, "/?#"); i >= 0 {
		s = s[:i]
	}
	return s
}

var paramPattern = regexp.MustCompile(`[?&]([A-Za-z_][A-Za-z0-9_]*)=([^&#\s]*)`)

// extractParams tenta o parse padrão e, se a URL for malformada, cai para
// extração via regex dos mesmos parâmetros direto da string crua.
func extractParams(pageURL string) map[string]string {
	params := make(map[string]string)
	if pageURL == "" {
		return params
	}

	if u, err := url.Parse(pageURL); err == nil && u.RawQuery != "" {
		if values, qerr := url.ParseQuery(u.RawQuery); qerr == nil {
			for key, vals := range values {
				if len(vals) > 0 {
					params[strings.ToLower(key)] = vals[0]
				}
			}
			return params
		}
	}

	for _, m := range paramPattern.FindAllStringSubmatch(pageURL, -1) {
		key := strings.ToLower(m[1])
		val := m[2]
		if decoded, err := url.QueryUnescape(val); err == nil {
			val = decoded
		}
		if _, seen := params[key]; !seen {
			params[key] = val
		}
	}
	return params
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return CampaignNotInformed
}
