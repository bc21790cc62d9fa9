package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		name           string
		width          int
		height         int
		contactFocused bool
		wantSide       bool
		wantSections   int
		wantContact    int
		wantMain       int
	}{
		{
			name:         "wide terminal splits the main area",
			width:        120,
			height:       40,
			wantSide:     true,
			wantSections: 75, // 120 - 45
			wantContact:  45, // 38% of 120
			wantMain:     38, // 40 - nav - status
		},
		{
			name:         "contact width is capped",
			width:        200,
			height:       50,
			wantSide:     true,
			wantSections: 140,
			wantContact:  MaxContactWidth,
			wantMain:     48,
		},
		{
			name:         "narrow terminal shows sections",
			width:        80,
			height:       24,
			wantSections: 80,
			wantContact:  0,
			wantMain:     22,
		},
		{
			name:           "narrow terminal with contact focused",
			width:          80,
			height:         24,
			contactFocused: true,
			wantSections:   0,
			wantContact:    80,
			wantMain:       22,
		},
		{
			name:         "tiny terminal respects minimums",
			width:        10,
			height:       4,
			wantSections: MinPanelWidth,
			wantMain:     MinPanelHeight,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := Calculate(tt.width, tt.height, tt.contactFocused)

			assert.Equal(t, tt.wantSide, l.SideBySide)
			assert.Equal(t, tt.wantSections, l.SectionsWidth)
			assert.Equal(t, tt.wantContact, l.ContactWidth)
			assert.Equal(t, tt.wantMain, l.MainHeight)
			assert.Equal(t, tt.wantContact > 0, l.ContactVisible())
			assert.Equal(t, tt.wantSections > 0, l.SectionsVisible())
		})
	}
}

func TestBounds(t *testing.T) {
	l := Calculate(120, 40, false)

	x, y, w, h := l.SectionsBounds()
	assert.Equal(t, []int{0, 1, 75, 38}, []int{x, y, w, h})

	x, y, w, h = l.ContactBounds()
	assert.Equal(t, []int{75, 1, 45, 38}, []int{x, y, w, h})

	x, y, w, h = l.StatusBarBounds()
	assert.Equal(t, []int{0, 39, 120, 1}, []int{x, y, w, h})

	narrow := Calculate(80, 24, false)
	x, y, w, h = narrow.ContactBounds()
	assert.Equal(t, []int{0, 0, 0, 0}, []int{x, y, w, h})
}

func TestContentDimensions(t *testing.T) {
	l := Calculate(100, 40, false)

	assert.Equal(t, 98, l.ContentWidth(100, 1))
	assert.Equal(t, 0, l.ContentWidth(1, 1))
	assert.Equal(t, 36, l.ContentHeight(38, 1))
}
