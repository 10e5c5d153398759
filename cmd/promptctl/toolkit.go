package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"prompt-studio-api/internal/config"
	einoobs "prompt-studio-api/internal/observability/eino"
	"prompt-studio-api/internal/wire"
	"prompt-studio-api/pkg/logger"
)

// loadToolkit 加载配置并组装生成组件；mutate 可在组装前调整配置
func loadToolkit(cmd *cobra.Command, opts *rootOptions, mutate func(*config.Config)) (*wire.Toolkit, *config.Config, error) {
	_ = godotenv.Load()

	cfg, err := config.LoadFrom(opts.configDir)
	if err != nil {
		return nil, nil, err
	}
	if mutate != nil {
		mutate(cfg)
	}

	logger.InitWithWriter(cmd.ErrOrStderr(), opts.logLevel, "text")
	einoobs.Init(einoobs.LogUsageRecorder{})

	tk, err := wire.InitializeToolkit(cmd.Context(), cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("initialize: %w", err)
	}
	return tk, cfg, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// readInput 参数为空或为 "-" 时从 stdin 读取
func readInput(args []string, stdin io.Reader) (string, error) {
	if len(args) > 0 && args[0] != "-" {
		return strings.Join(args, " "), nil
	}
	if stdin == nil {
		stdin = os.Stdin
	}
	b, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(b), nil
}
