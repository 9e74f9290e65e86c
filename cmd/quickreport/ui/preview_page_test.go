package ui

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickreport/internal/report"
)

func previewState() report.State {
	s := report.DefaultState(time.Date(2024, 3, 7, 9, 0, 0, 0, time.UTC))
	s.Items[0].DS = "9308k"
	s.Items[0].CPI = "489k"
	return s
}

func TestPreviewShowsRenderedReport(t *testing.T) {
	p := NewPreviewPageModel(DefaultStyles())
	p.SetSize(80, 24)
	p.SetState(previewState())

	view := p.View()
	assert.Contains(t, view, "BCKQ")
	assert.Contains(t, view, "SSK003 ML")
	// The report sits inside a bordered panel.
	assert.Contains(t, view, "╭")
}

func TestCopyCmdWritesRenderedText(t *testing.T) {
	original := clipboardWriteAll
	defer func() { clipboardWriteAll = original }()

	var captured string
	clipboardWriteAll = func(text string) error {
		captured = text
		return nil
	}

	state := previewState()
	p := NewPreviewPageModel(DefaultStyles())
	p.SetState(state)

	cmd := p.CopyCmd()
	require.NotNil(t, cmd)

	msg, ok := cmd().(ClipboardResultMsg)
	require.True(t, ok)
	assert.NoError(t, msg.Err)
	assert.Equal(t, report.Render(state), captured)
	assert.True(t, strings.HasPrefix(captured, "BCKQ"))
}

func TestCopyCmdReportsFailure(t *testing.T) {
	original := clipboardWriteAll
	defer func() { clipboardWriteAll = original }()

	clipboardWriteAll = func(string) error {
		return errors.New("no display")
	}

	p := NewPreviewPageModel(DefaultStyles())
	p.SetState(previewState())

	msg, ok := p.CopyCmd()().(ClipboardResultMsg)
	require.True(t, ok)
	assert.Error(t, msg.Err)
}
