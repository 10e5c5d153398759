package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"prompt-studio-api/internal/application/generation"
	"prompt-studio-api/internal/config"
	"prompt-studio-api/internal/domain/entity"
	"prompt-studio-api/internal/interfaces/http/dto"
)

type generateOptions struct {
	templateID      string
	mode            string
	creativity      float64
	professionalism float64
	detail          float64
	timeout         time.Duration
	retries         int
	local           bool
}

func newGenerateCmd(root *rootOptions) *cobra.Command {
	opts := &generateOptions{}
	cmd := &cobra.Command{
		Use:   "generate [需求描述|-]",
		Short: "生成结构化提示词",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(args, cmd.InOrStdin())
			if err != nil {
				return err
			}

			tk, cfg, err := loadToolkit(cmd, root, func(c *config.Config) {
				if opts.local {
					c.Generation.RemoteEnabled = false
				}
			})
			if err != nil {
				return err
			}

			req := generation.Request{
				Input:      input,
				TemplateID: opts.templateID,
				Timeout:    opts.timeout,
			}
			if opts.mode != "" {
				req.Mode = entity.ParseGenerationMode(opts.mode)
			}
			if cmd.Flags().Changed("retries") {
				req.Retries = &opts.retries
			}
			if params, ok := opts.params(cmd, generation.OptionsFromConfig(cfg.Generation).DefaultParams); ok {
				req.Params = &params
			}

			result, err := tk.Orchestrator.Generate(cmd.Context(), req)
			if err != nil {
				if errors.Is(err, generation.ErrCancelled) {
					return errors.New("generation cancelled")
				}
				return err
			}

			if root.jsonOut {
				return writeJSON(cmd.OutOrStdout(), dto.ToGenerateResponse(result))
			}
			out := cmd.OutOrStdout()
			if result.Provenance == entity.ProvenanceLocal {
				fmt.Fprintf(cmd.ErrOrStderr(), "[%s] %s\n", result.FallbackCause, result.FallbackHint)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "template: %s (%s), provenance: %s\n", result.TemplateName, result.TemplateID, result.Provenance)
			_, err = fmt.Fprintln(out, result.Content)
			return err
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.templateID, "template", "t", "", "模板 ID，留空时自动匹配")
	f.StringVarP(&opts.mode, "mode", "m", "", "生成模式：fast | standard")
	f.Float64Var(&opts.creativity, "creativity", 0, "创造性（0-10）")
	f.Float64Var(&opts.professionalism, "professionalism", 0, "专业度（0-10）")
	f.Float64Var(&opts.detail, "detail", 0, "详细程度（0-10）")
	f.DurationVar(&opts.timeout, "timeout", 0, "单次尝试超时")
	f.IntVar(&opts.retries, "retries", 0, "失败后的重试次数")
	f.BoolVar(&opts.local, "local", false, "不调用远程模型，直接使用本地模板")
	return cmd
}

// params 仅当指定了任一旋钮时返回覆盖后的参数
func (o *generateOptions) params(cmd *cobra.Command, defaults entity.GenerationParams) (entity.GenerationParams, bool) {
	req := dto.ParamsRequest{}
	changed := false
	if cmd.Flags().Changed("creativity") {
		req.Creativity, changed = &o.creativity, true
	}
	if cmd.Flags().Changed("professionalism") {
		req.Professionalism, changed = &o.professionalism, true
	}
	if cmd.Flags().Changed("detail") {
		req.Detail, changed = &o.detail, true
	}
	if !changed {
		return entity.GenerationParams{}, false
	}
	return req.Merge(defaults), true
}
