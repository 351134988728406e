package ui

import (
	"testing"

	"github.com/automoto/glassdialog/components"
	"github.com/stretchr/testify/assert"
)

func TestStatusText(t *testing.T) {
	title := &components.TitleData{}
	assert.Equal(t, "No answer yet", StatusText(title))

	title.LastAnswer = "No"
	title.Answers = 3
	assert.Equal(t, "Last answer: No (3 so far)", StatusText(title))
}
