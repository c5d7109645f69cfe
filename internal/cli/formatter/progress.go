package formatter

import (
	"fmt"
	"strings"

	"github.com/TGO0427/synercore-import-schedule-sub003/internal/domain"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderUtilization renders a bar like [████████░░] 85% colored by tier.
// The bar is full from 100% upward; the printed percentage is not clamped.
func RenderUtilization(pct int, width int, tier domain.AlertTier) string {
	if width < 2 {
		width = 2
	}
	fill := pct
	if fill < 0 {
		fill = 0
	}
	if fill > 100 {
		fill = 100
	}

	filled := fill * width / 100
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
	return fmt.Sprintf("[%s] %3d%%", TierStyle(tier).Render(bar), pct)
}
