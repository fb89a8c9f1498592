package utils

import (
	"bytes"
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

func testFace(t *testing.T) *text.GoTextFace {
	t.Helper()
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		t.Fatalf("无法创建字体源: %v", err)
	}
	return &text.GoTextFace{Source: src, Size: 16}
}

// TestWrapText 测试文本换行功能
func TestWrapText(t *testing.T) {
	font := testFace(t)

	tests := []struct {
		name      string
		input     string
		maxWidth  float64
		expectMin int // 期望最少的行数
	}{
		{"短文本不换行", "Attendance", 1000, 1},
		{"长文本自动换行", "Attendance, grades and parent messages in one place for every classroom", 200, 2},
		{"空文本", "", 100, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := WrapText(tt.input, font, tt.maxWidth)
			if len(lines) < tt.expectMin {
				t.Errorf("期望至少 %d 行，实际得到 %d 行", tt.expectMin, len(lines))
			}
			for i, line := range lines {
				if len(lines) > 1 && measureTextWidth(line, font) > tt.maxWidth {
					t.Errorf("第 %d 行 %q 超过最大宽度", i+1, line)
				}
			}
		})
	}
}

// TestWrapTextKeepsWords 断行不拆开单词
func TestWrapTextKeepsWords(t *testing.T) {
	font := testFace(t)
	input := "one two three four five six seven eight nine ten"
	lines := WrapText(input, font, 80)
	if len(lines) < 2 {
		t.Fatalf("expected wrapping, got %q", lines)
	}
	if got := strings.Join(lines, " "); got != input {
		t.Errorf("rejoined = %q, want %q", got, input)
	}
}

// TestWrapTextEdgeCases 测试边界情况
func TestWrapTextEdgeCases(t *testing.T) {
	font := testFace(t)

	if lines := WrapText("abc", nil, 100); len(lines) != 1 || lines[0] != "abc" {
		t.Errorf("nil font: %q", lines)
	}
	if lines := WrapText("abc", font, 0); len(lines) != 1 || lines[0] != "abc" {
		t.Errorf("zero width: %q", lines)
	}

	// 超长单词被强制切分
	long := strings.Repeat("w", 40)
	lines := WrapText(long, font, 50)
	if len(lines) < 2 {
		t.Fatalf("long word not broken: %q", lines)
	}
	if strings.Join(lines, "") != long {
		t.Errorf("broken word lost characters: %q", lines)
	}
}
