package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"keyframe/internal/config"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}

	configCmd.AddCommand(newConfigInitCommand())
	configCmd.AddCommand(newConfigValidateCommand(ctx))
	configCmd.AddCommand(newConfigShowCommand(ctx))
	configCmd.AddCommand(newConfigPathCommand())

	return configCmd
}

func newConfigInitCommand() *cobra.Command {
	var targetPath string
	var overwrite bool

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Create a sample configuration file",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(targetPath)
			if target == "" {
				defaultPath, err := config.DefaultConfigPath()
				if err != nil {
					return fmt.Errorf("determine default config path: %w", err)
				}
				target = defaultPath
			} else {
				expanded, err := config.ExpandPath(target)
				if err != nil {
					return fmt.Errorf("resolve config path: %w", err)
				}
				target = expanded
			}

			if !overwrite {
				if _, err := os.Stat(target); err == nil {
					return fmt.Errorf("config file already exists at %s (use --overwrite to replace it)", target)
				} else if !os.IsNotExist(err) {
					return fmt.Errorf("check config path: %w", err)
				}
			}

			if err := config.CreateSample(target); err != nil {
				return fmt.Errorf("create sample config: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote sample configuration to %s\n", target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination for the configuration file")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite existing configuration if present")
	return cmd
}

func newConfigValidateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration sources",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := ctx.ensureSession()
			if err != nil {
				return err
			}
			if err := sess.Config.EnsureDirectories(); err != nil {
				return fmt.Errorf("ensure directories: %w", err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Config path: %s\n", sess.ConfigPath)
			if !sess.ConfigExists {
				fmt.Fprintln(out, "Config file did not exist; defaults were used")
			}
			fmt.Fprintln(out, "Configuration valid")
			return nil
		},
	}
}

func newConfigShowCommand(ctx *commandContext) *cobra.Command {
	var section string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration values",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := ctx.ensureSession()
			if err != nil {
				return err
			}

			cfg := sess.Config
			keys := cfg.Keys()
			if section != "" {
				paths, ok := cfg.Sections()[section]
				if !ok {
					return fmt.Errorf("unknown section %q", section)
				}
				keys = paths
			}

			rows := make([][]string, 0, len(keys))
			for _, key := range keys {
				value, _ := cfg.Value(key)
				opt := cfg.Option(key)
				rows = append(rows, []string{key, formatOptionValue(value), opt.Doc})
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Option", "Value", "Description"},
				rows,
				sess.CLI.TableStyle,
			))
			return nil
		},
	}

	cmd.Flags().StringVarP(&section, "section", "s", "", "Limit output to one section (frame, camera, output, render, logging, cli)")
	return cmd
}

func newConfigPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "path",
		Short:       "Print the resolved configuration file path",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.DefaultConfigPath()
			if err != nil {
				return fmt.Errorf("determine default config path: %w", err)
			}
			if project, err := filepath.Abs("keyframe.toml"); err == nil {
				if info, statErr := os.Stat(project); statErr == nil && !info.IsDir() {
					path = project
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}

func formatOptionValue(value any) string {
	switch v := value.(type) {
	case []string:
		return strings.Join(v, ", ")
	case string:
		if v == "" {
			return `""`
		}
		return v
	default:
		return fmt.Sprint(v)
	}
}
