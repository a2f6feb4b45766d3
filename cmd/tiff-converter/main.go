// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the tiff-converter CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/merlinc16/tiff-converter-for-ocr/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// toolsCfg holds the external binary overrides resolved from the config
// file and environment at startup.
var toolsCfg types.ToolsConfig

// rootCmd is the base command for the tiff-converter CLI.
var rootCmd = &cobra.Command{
	Use:   "tiff-converter",
	Short: "Batch-convert documents into OCR-ready TIFF files",
	Long: `tiff-converter walks an input directory and converts every matching file
into an 8-bit grayscale, LZW-compressed TIFF, mirroring the directory
structure under an output root. Files whose output already exists are
skipped, so an interrupted run can simply be restarted.

The pdf flow rasterizes PDFs through Ghostscript, one TIFF page per PDF
page; the tiff flow re-encodes existing TIFFs through ImageMagick. Both
tools must be installed; they are checked before any file is touched.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./tiff-converter.yaml or ~/.config/tiff-converter/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("tiff-converter")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "tiff-converter"))
		}
	}

	viper.SetEnvPrefix("TIFF_CONVERTER")
	viper.AutomaticEnv()

	viper.SetDefault("tools.ghostscript", "gs")
	viper.SetDefault("tools.magick", "magick")

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	loadToolsConfig()
}

// loadToolsConfig resolves the tools section into toolsCfg. An invalid
// section falls back to the defaults with a warning rather than aborting.
func loadToolsConfig() {
	if err := viper.UnmarshalKey("tools", &toolsCfg); err != nil {
		fmt.Fprintln(os.Stderr, "warning: ignoring invalid tools config:", err)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
