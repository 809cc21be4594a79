package client_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"resume-folio/client"
	"resume-folio/dto"
)

func TestApplyGenerationFillsPlaceholders(t *testing.T) {
	s := client.NewSession()
	s.ApplyGeneration("resume.pdf", dto.SiteCode{
		HTMLCode: "<h1>Hi</h1>",
		CSSCode:  "  \n\t",
		JSCode:   "",
	})

	assert.Equal(t, client.PhaseGenerated, s.Phase)
	assert.Equal(t, "resume.pdf", s.SourceFile)
	assert.Equal(t, "<h1>Hi</h1>", s.Site.HTMLCode)
	assert.Equal(t, client.PlaceholderCSS, s.Site.CSSCode)
	assert.Equal(t, client.PlaceholderJS, s.Site.JSCode)
	assert.False(t, s.GeneratedAt.IsZero())
}

func TestApplyGenerationResetsPreviousFlow(t *testing.T) {
	s := client.NewSession()
	s.ApplyGeneration("old.pdf", dto.SiteCode{HTMLCode: "<p>old</p>", CSSCode: "p{}", JSCode: "x()"})
	s.DeployURL = "https://old.example.com"
	s.Phase = client.PhaseDeployed

	s.ApplyGeneration("new.docx", dto.SiteCode{HTMLCode: "<p>new</p>", CSSCode: "p{}", JSCode: ""})

	assert.Equal(t, "new.docx", s.SourceFile)
	assert.Equal(t, "<p>new</p>", s.Site.HTMLCode)
	assert.Empty(t, s.DeployURL)
	assert.Equal(t, client.PhaseGenerated, s.Phase)
}

func TestResetClearsEverything(t *testing.T) {
	s := client.NewSession()
	s.ApplyGeneration("resume.pdf", dto.SiteCode{HTMLCode: "<p>x</p>", CSSCode: "p{}", JSCode: ""})
	s.DeployURL = "https://site.example.com"

	s.Reset()

	assert.Equal(t, client.PhaseIdle, s.Phase)
	assert.Empty(t, s.SourceFile)
	assert.Empty(t, s.Site.HTMLCode)
	assert.Empty(t, s.DeployURL)
	assert.True(t, s.GeneratedAt.IsZero())
}

func TestCanPublish(t *testing.T) {
	s := client.NewSession()
	assert.ErrorIs(t, s.CanPublish(), client.ErrEmptySite)

	s.Site = dto.SiteCode{HTMLCode: "<p>x</p>", CSSCode: "   "}
	assert.ErrorIs(t, s.CanPublish(), client.ErrEmptySite)

	s.Site = dto.SiteCode{HTMLCode: "<p>x</p>", CSSCode: "p{}"}
	assert.NoError(t, s.CanPublish())

	// script may be blank
	assert.Empty(t, s.Site.JSCode)
}

func TestSaveLoadRoundtrip(t *testing.T) {
	dir := t.TempDir()

	s := client.NewSession()
	s.ApplyGeneration("resume.pdf", dto.SiteCode{
		HTMLCode: "<main>portfolio</main>",
		CSSCode:  "main { margin: 0 auto; }",
		JSCode:   "",
	})
	s.DeployURL = "https://folio.example.com"
	s.Phase = client.PhaseDeployed
	assert.NoError(t, s.Save(dir))

	loaded, err := client.LoadSession(dir)
	assert.NoError(t, err)
	assert.Equal(t, s.SourceFile, loaded.SourceFile)
	assert.Equal(t, s.Site, loaded.Site)
	assert.Equal(t, client.PhaseDeployed, loaded.Phase)
	assert.Equal(t, s.DeployURL, loaded.DeployURL)
}

func TestLoadSessionMissingDir(t *testing.T) {
	_, err := client.LoadSession(t.TempDir() + "/nope")
	assert.Error(t, err)
}
