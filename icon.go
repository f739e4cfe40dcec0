package main

// Writes every glyph in both palettes as PNG or ICO files so the tray rendering
// can be checked against a real notification area.

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/clickplay/clickplay/internal/glyph"
	"github.com/clickplay/clickplay/internal/icons"
)

var (
	renderOut    string
	renderFormat string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Write every icon as PNG or ICO",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := icons.ParseFormat(renderFormat)
		if err != nil {
			return err
		}
		files, err := renderIcons(renderOut, format)
		if err != nil {
			return err
		}
		for _, f := range files {
			fmt.Println(f)
		}
		return nil
	},
}

func init() {
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", ".", "Output directory")
	renderCmd.Flags().StringVarP(&renderFormat, "format", "f", "png", "Icon format: png or ico")
}

// renderIcons writes <glyph>-<black|white>.<ext> for every glyph and
// returns the written paths.
func renderIcons(dir string, format icons.Format) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	var written []string
	for _, g := range glyph.All {
		for _, p := range []glyph.Palette{{DarkForeground: true}, {DarkForeground: false}} {
			data, err := icons.Encode(glyph.Render(g, p).Image(), format)
			if err != nil {
				return written, err
			}
			path := filepath.Join(dir, fmt.Sprintf("%s-%s.%s", g, p, format.Ext()))
			if err := os.WriteFile(path, data, 0644); err != nil {
				return written, fmt.Errorf("failed to write %s: %w", path, err)
			}
			written = append(written, path)
		}
	}
	return written, nil
}
