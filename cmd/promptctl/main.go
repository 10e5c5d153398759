// Package main promptctl 命令行工具：在终端里生成提示词、匹配模板、测试连接
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type rootOptions struct {
	configDir string
	logLevel  string
	jsonOut   bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	rootCmd := &cobra.Command{
		Use:           "promptctl",
		Short:         "Structured prompt generator",
		Long:          "promptctl 根据需求描述选择框架模板，生成结构化提示词；远程不可用时使用本地模板。",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configDir, "config-dir", "configs", "配置目录")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "日志级别（输出到 stderr）")
	flags.BoolVar(&opts.jsonOut, "json", false, "以 JSON 输出")

	rootCmd.AddCommand(newGenerateCmd(opts))
	rootCmd.AddCommand(newMatchCmd(opts))
	rootCmd.AddCommand(newTemplatesCmd(opts))
	rootCmd.AddCommand(newPingCmd(opts))
	return rootCmd
}
