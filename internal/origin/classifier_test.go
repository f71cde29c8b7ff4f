package origin_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zapcapta/zapcapta-api/internal/origin"
)

func TestClassify_PageURLRules(t *testing.T) {
	tests := []struct {
		name         string
		pageURL      string
		wantOrigin   string
		wantCampaign string
	}{
		{
			name:         "fbclid vira Meta Ads",
			pageURL:      "https://site.com/lp?fbclid=ABC123",
			wantOrigin:   origin.MetaAds,
			wantCampaign: origin.CampaignNotInformed,
		},
		{
			name:         "fbclid ganha de gclid (precedência)",
			pageURL:      "https://site.com/lp?fbclid=ABC&gclid=XYZ",
			wantOrigin:   origin.MetaAds,
			wantCampaign: origin.CampaignNotInformed,
		},
		{
			name:       "utm_source instagram sem cpc vira Instagram",
			pageURL:    "https://site.com/?utm_source=Instagram",
			wantOrigin: origin.Instagram,
		},
		{
			name:       "utm_source meta vira Meta Ads",
			pageURL:    "https://site.com/?utm_source=META",
			wantOrigin: origin.MetaAds,
		},
		{
			name:         "srsltid vira Tráfego Orgânico",
			pageURL:      "https://site.com/?srsltid=AfmBOo123",
			wantOrigin:   origin.Organic,
			wantCampaign: origin.CampaignNotInformed,
		},
		{
			name:       "gclid vira Google Ads",
			pageURL:    "https://site.com/?gclid=Cj0KCQ",
			wantOrigin: origin.GoogleAds,
		},
		{
			name:       "gad_source vira Google Ads",
			pageURL:    "https://site.com/?gad_source=1",
			wantOrigin: origin.GoogleAds,
		},
		{
			name:         "utm_source desconhecida vira UTM Campaign",
			pageURL:      "https://site.com/?utm_source=newsletter&utm_campaign=promo-julho",
			wantOrigin:   origin.UTMCampaign,
			wantCampaign: "promo-julho",
		},
		{
			name:         "sem query string vira Tráfego Direto",
			pageURL:      "https://example.com/",
			wantOrigin:   origin.Direct,
			wantCampaign: origin.CampaignNotInformed,
		},
		{
			name:         "query sem sinal conhecido vira Tráfego Direto",
			pageURL:      "https://example.com/?page=2&sort=asc",
			wantOrigin:   origin.Direct,
			wantCampaign: origin.CampaignNotInformed,
		},
		{
			name:         "google cpc com campanha",
			pageURL:      "https://site.com/?utm_source=google&utm_medium=cpc&utm_campaign=black-friday",
			wantOrigin:   origin.GoogleAds,
			wantCampaign: "black-friday",
		},
		{
			name:         "google cpc sem utm_campaign usa utm_term antes de utm_content",
			pageURL:      "https://site.com/?utm_source=google&utm_medium=cpc&utm_term=shoes&utm_content=banner",
			wantOrigin:   origin.GoogleAds,
			wantCampaign: "shoes",
		},
		{
			name:         "facebook cpc vira Meta Ads com utm_content",
			pageURL:      "https://site.com/?utm_source=facebook&utm_medium=cpc&utm_content=carrossel",
			wantOrigin:   origin.MetaAds,
			wantCampaign: "carrossel",
		},
		{
			name:         "instagram cpc vira Meta Ads, não Instagram",
			pageURL:      "https://site.com/?utm_source=instagram&utm_medium=cpc&utm_campaign=stories",
			wantOrigin:   origin.MetaAds,
			wantCampaign: "stories",
		},
		{
			name:         "campanha é decodificada",
			pageURL:      "https://site.com/?utm_source=google&utm_medium=cpc&utm_campaign=ver%C3%A3o%202026",
			wantOrigin:   origin.GoogleAds,
			wantCampaign: "verão 2026",
		},
		{
			name:         "URL vazia degrada para Tráfego Direto",
			pageURL:      "",
			wantOrigin:   origin.Direct,
			wantCampaign: origin.CampaignNotInformed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := origin.Classify(tt.pageURL)
			assert.Equal(t, tt.wantOrigin, got.Origin)
			if tt.wantCampaign != "" {
				assert.Equal(t, tt.wantCampaign, got.Campaign)
			}
		})
	}
}

func TestClassify_MalformedURLFallback(t *testing.T) {
	got := origin.Classify("not a url?fbclid=123")
	assert.Equal(t, origin.MetaAds, got.Origin)

	got = origin.Classify("%%%?gclid=abc&utm_campaign=promo%20de%20inverno")
	assert.Equal(t, origin.GoogleAds, got.Origin)
	assert.Equal(t, "promo de inverno", got.Campaign)
}

func TestClassifyWithReferrer_HostRules(t *testing.T) {
	tests := []struct {
		name       string
		pageURL    string
		referrer   string
		wantOrigin string
	}{
		{"google organico", "https://site.com/", "https://www.google.com/search?q=dentista", origin.GoogleOrganic},
		{"google com ccTLD", "https://site.com/", "https://www.google.com.br/", origin.GoogleOrganic},
		{"facebook organico", "https://site.com/", "https://www.facebook.com/minha-pagina", origin.Facebook},
		{"fb.com curto", "https://site.com/", "https://fb.com/x", origin.Facebook},
		{"instagram organico", "https://site.com/", "https://www.instagram.com/perfil/", origin.Instagram},
		{"redirecionador l.facebook vira Meta Ads", "https://site.com/", "https://l.facebook.com/l.php?u=x", origin.MetaAds},
		{"redirecionador l.instagram vira Meta Ads", "https://site.com/", "https://l.instagram.com/?u=x", origin.MetaAds},
		{"referrer desconhecido vira Tráfego Direto", "https://site.com/", "https://blog.qualquer.com/post", origin.Direct},
		{"sem referrer vira Tráfego Direto", "https://site.com/", "", origin.Direct},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := origin.ClassifyWithReferrer(tt.pageURL, tt.referrer)
			assert.Equal(t, tt.wantOrigin, got.Origin)
		})
	}
}

func TestClassifyWithReferrer_UTMGanhaDoReferrer(t *testing.T) {
	// Sinal de UTM na página tem precedência sobre o hostname do referrer.
	got := origin.ClassifyWithReferrer(
		"https://site.com/?utm_source=google&utm_medium=cpc&utm_campaign=promo",
		"https://www.facebook.com/",
	)
	assert.Equal(t, origin.GoogleAds, got.Origin)
	assert.Equal(t, "promo", got.Campaign)
}

func TestClassify_Determinism(t *testing.T) {
	inputs := [][2]string{
		{"https://site.com/?fbclid=1&gclid=2", "https://www.google.com/"},
		{"not a url?srsltid=9", ""},
		{"https://site.com/", "https://l.instagram.com/"},
		{"", ""},
	}

	for _, in := range inputs {
		first := origin.ClassifyWithReferrer(in[0], in[1])
		second := origin.ClassifyWithReferrer(in[0], in[1])
		assert.Equal(t, first, second)
	}
}

func TestClassify_CampaignNuncaVazia(t *testing.T) {
	urls := []string{
		"https://site.com/",
		"https://site.com/?utm_source=google&utm_medium=cpc",
		"https://site.com/?fbclid=x",
		"???",
	}
	for _, u := range urls {
		got := origin.Classify(u)
		assert.NotEmpty(t, got.Campaign)
	}
}
