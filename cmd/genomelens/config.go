package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// configKey describes one configuration key genomelens understands.
type configKey struct {
	coerce func(value string) (any, error)
	usage  string
}

// configKeys are the only keys config set accepts. Each coercer turns the
// raw CLI string into the type the rest of the tool reads back via viper.
var configKeys = map[string]configKey{
	"parse.numeric-sex-chromosomes": {
		coerce: coerceBool,
		usage:  "map chromosome tokens 23/24/25 to X/Y/MT (true/false)",
	},
	"report.top-genotypes": {
		coerce: coercePositiveInt,
		usage:  "how many of the most common genotypes the report lists",
	},
}

func coerceBool(value string) (any, error) {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return nil, fmt.Errorf("expected true or false, got %q", value)
	}
	return b, nil
}

func coercePositiveInt(value string) (any, error) {
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 {
		return nil, fmt.Errorf("expected a positive integer, got %q", value)
	}
	return n, nil
}

func configKeyNames() []string {
	names := make([]string, 0, len(configKeys))
	for name := range configKeys {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage genomelens configuration",
		Long:  "Show, get, or set configuration values. Config is stored in ~/.genomelens.yaml.",
		Example: `  genomelens config                                    # show all config
  genomelens config set parse.numeric-sex-chromosomes true
  genomelens config get report.top-genotypes`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigShow(cmd)
		},
	}

	cmd.AddCommand(newConfigSetCmd())
	cmd.AddCommand(newConfigGetCmd())

	return cmd
}

func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigSet(args[0], args[1])
		},
	}
}

func newConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigGet(args[0])
		},
	}
}

// runConfigShow renders every key genomelens reads, with its effective
// value (set, or default) and a short description.
func runConfigShow(cmd *cobra.Command) error {
	settings := make(map[string]any, len(configKeys))
	for name := range configKeys {
		settings[name] = viper.Get(name)
	}

	out, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), string(out))

	fmt.Fprintln(cmd.OutOrStdout())
	for _, name := range configKeyNames() {
		fmt.Fprintf(cmd.OutOrStdout(), "# %s: %s\n", name, configKeys[name].usage)
	}
	return nil
}

func runConfigSet(key, value string) error {
	ck, ok := configKeys[key]
	if !ok {
		return fmt.Errorf("unknown config key %q (known keys: %s)", key, strings.Join(configKeyNames(), ", "))
	}

	coerced, err := ck.coerce(value)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	viper.Set(key, coerced)

	cfgFile := viper.ConfigFileUsed()
	if cfgFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("cannot determine home directory: %w", err)
		}
		cfgFile = filepath.Join(home, ".genomelens.yaml")
	}

	if err := viper.WriteConfigAs(cfgFile); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	fmt.Printf("Set %s = %v in %s\n", key, coerced, cfgFile)
	return nil
}

func runConfigGet(key string) error {
	if _, ok := configKeys[key]; !ok {
		return fmt.Errorf("unknown config key %q (known keys: %s)", key, strings.Join(configKeyNames(), ", "))
	}
	fmt.Println(viper.Get(key))
	return nil
}
