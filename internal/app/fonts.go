package app

import (
	"fmt"
	"log"

	"github.com/five82/strata/internal/complog"
	"github.com/five82/strata/internal/config"
)

// loadTypeface returns the label font: the configured one, else the first
// installed CJK font. With neither, labels fall back to the bitmap face and
// the typeface is nil.
func loadTypeface(cfg config.Config, candidates []string) (*complog.Typeface, error) {
	if cfg.FontPath != "" {
		tf, err := complog.LoadTypeface(cfg.FontPath, cfg.FontSize)
		if err != nil {
			return nil, fmt.Errorf("load label font: %w", err)
		}
		return tf, nil
	}
	tf, _ := complog.FindTypeface(candidates, cfg.FontSize)
	if tf == nil {
		log.Printf("no CJK font found; set font in the config to draw Chinese labels")
	}
	return tf, nil
}
