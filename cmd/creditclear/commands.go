package main

import (
	"encoding/json"
	"io"
	"math/rand/v2"
	"os"

	"creditclear/internal/core/features"
	perr "creditclear/internal/platform/errors"
	"creditclear/internal/services/api/scoring/domain"

	"github.com/spf13/cobra"
)

func (a *app) featuresCmd() *cobra.Command {
	var group string
	cmd := &cobra.Command{
		Use:   "features [name]",
		Short: "List features, or show one by name",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if len(args) == 1 {
				def, err := a.svc.Feature(ctx, args[0])
				if err != nil {
					return err
				}
				return a.emit(cmd, def)
			}
			defs, err := a.svc.Features(ctx)
			if err != nil {
				return err
			}
			if group == "" {
				return a.emit(cmd, defs)
			}
			out := make([]features.Definition, 0, len(defs))
			for _, d := range defs {
				if d.Group == group {
					out = append(out, d)
				}
			}
			if len(out) == 0 {
				return perr.NotFoundf("no features in group %q", group)
			}
			return a.emit(cmd, out)
		},
	}
	cmd.Flags().StringVar(&group, "group", "", "only features in this display group")
	return cmd
}

func (a *app) templateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "template",
		Short: "Print the batch CSV header",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tpl, err := a.svc.Template(cmd.Context())
			if err != nil {
				return err
			}
			_, err = io.WriteString(cmd.OutOrStdout(), tpl)
			return err
		},
	}
}

func (a *app) sampleCmd() *cobra.Command {
	var seed uint64
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Print a synthetic record, stable for a given --seed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("seed") {
				seed = rand.Uint64()
			}
			rec, err := a.svc.Sample(cmd.Context(), seed)
			if err != nil {
				return err
			}
			return a.emit(cmd, rec)
		},
	}
	cmd.Flags().Uint64Var(&seed, "seed", 0, "sample seed, random when unset")
	return cmd
}

func (a *app) predictCmd() *cobra.Command {
	var narrate bool
	cmd := &cobra.Command{
		Use:   "predict [file|-]",
		Short: "Score one JSON record read from a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := domain.PredictInput{Narrate: narrate}
			if err := readJSON(cmd, arg(args, 0), &in.Features); err != nil {
				return err
			}
			out, err := a.svc.Predict(cmd.Context(), in)
			if err != nil {
				return a.fail(cmd, err)
			}
			return a.emit(cmd, out)
		},
	}
	cmd.Flags().BoolVar(&narrate, "narrate", false, "add a generated narrative")
	return cmd
}

func (a *app) batchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "batch [file.csv|-]",
		Short: "Score every row of a CSV file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readAll(cmd, arg(args, 0))
			if err != nil {
				return err
			}
			out, err := a.svc.PredictBatch(cmd.Context(), string(raw))
			if err != nil {
				return a.fail(cmd, err)
			}
			return a.emit(cmd, out)
		},
	}
}

func (a *app) whatIfCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whatif baseline.json modified.json",
		Short: "Compare a record against an edited copy",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in domain.WhatIfInput
			if err := readJSON(cmd, args[0], &in.Baseline); err != nil {
				return err
			}
			if err := readJSON(cmd, args[1], &in.Modified); err != nil {
				return err
			}
			out, err := a.svc.WhatIf(cmd.Context(), in)
			if err != nil {
				return a.fail(cmd, err)
			}
			return a.emit(cmd, out)
		},
	}
}

func (a *app) emit(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	if a.pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}

// fail prints field level details to stderr before returning err
func (a *app) fail(cmd *cobra.Command, err error) error {
	if e, ok := perr.As(err); ok && e.Details() != nil {
		enc := json.NewEncoder(cmd.ErrOrStderr())
		enc.SetIndent("", "  ")
		_ = enc.Encode(e.Details())
	}
	return err
}

func arg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return "-"
}

func readAll(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "read %s", path)
	}
	return b, nil
}

func readJSON(cmd *cobra.Command, path string, dst any) error {
	raw, err := readAll(cmd, path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeJSON, "decode %s", path)
	}
	return nil
}
