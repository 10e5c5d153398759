package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"prompt-studio-api/internal/interfaces/http/dto"
)

func newPingCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "经由代理测试模型连接",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tk, cfg, err := loadToolkit(cmd, root, nil)
			if err != nil {
				return err
			}

			res, err := tk.Pinger.Ping(cmd.Context())
			if err != nil {
				return err
			}
			if root.jsonOut {
				return writeJSON(cmd.OutOrStdout(), dto.ToPingResponse(res))
			}

			out := cmd.OutOrStdout()
			if res.OK {
				fmt.Fprintf(out, "ok  %s  %dms  %q\n", cfg.LLM.Proxy.URL, res.Latency.Milliseconds(), res.Reply)
				return nil
			}
			fmt.Fprintf(out, "failed  %s  cause=%s status=%d\n", cfg.LLM.Proxy.URL, res.Cause, res.StatusCode)
			if res.Message != "" {
				fmt.Fprintf(out, "  %s\n", res.Message)
			}
			if res.Hint != "" {
				fmt.Fprintf(out, "  %s\n", res.Hint)
			}
			return fmt.Errorf("connection test failed: %s", res.Cause)
		},
	}
}
