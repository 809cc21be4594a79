package client_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"resume-folio/client"
	"resume-folio/dto"
)

func TestTabCycle(t *testing.T) {
	assert.Equal(t, client.TabCSS, client.TabHTML.Next())
	assert.Equal(t, client.TabJS, client.TabCSS.Next())
	assert.Equal(t, client.TabHTML, client.TabJS.Next())
}

func TestTabFilenames(t *testing.T) {
	assert.Equal(t, "index.html", client.TabHTML.Filename())
	assert.Equal(t, "style.css", client.TabCSS.Filename())
	assert.Equal(t, "script.js", client.TabJS.Filename())
}

func TestBlobAccessLeavesOthersUntouched(t *testing.T) {
	s := client.NewSession()
	s.Site = dto.SiteCode{HTMLCode: "<p>h</p>", CSSCode: "p{}", JSCode: "f()"}

	assert.Equal(t, "<p>h</p>", s.Blob(client.TabHTML))
	assert.Equal(t, "p{}", s.Blob(client.TabCSS))
	assert.Equal(t, "f()", s.Blob(client.TabJS))

	s.SetBlob(client.TabCSS, "p { color: red; }")

	assert.Equal(t, "<p>h</p>", s.Site.HTMLCode)
	assert.Equal(t, "p { color: red; }", s.Site.CSSCode)
	assert.Equal(t, "f()", s.Site.JSCode)
}
