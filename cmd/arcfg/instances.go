package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"ecutools/arcfg/pkg/cli"
	"ecutools/arcfg/pkg/ecuc/model"
)

var instancesFlags struct {
	container string
	format    string
	create    int
	deleteID  int
	switchTo  int
	next      bool
	copyFrom  int
	sets      []string
	resetID   int
	resetAll  bool
}

// instancesBody reports container instance state after the requested
// operations were applied.
type instancesBody struct {
	Success   bool                 `json:"success"`
	Container string               `json:"container"`
	Current   int                  `json:"currentInstance"`
	Count     int                  `json:"instanceCount"`
	Instances []*model.Instance    `json:"instances"`
	Modified  map[string]string    `json:"modifiedVariables"`
	History   []model.ChangeRecord `json:"history"`
}

var instancesCmd = &cobra.Command{
	Use:   "instances <file>",
	Short: "Apply instance operations to a container and show the result",
	Long: `Parse a document, apply the requested instance operations to one
container of the configuration model, and print the resulting instance
state together with the change history.

Operations apply in a fixed order: create, delete, switch, copy, set,
reset. All changes are in-memory for this invocation only.

Examples:
  arcfg instances Lin.xdm --container Lin/LinGlobalConfig/LinChannel
  arcfg instances Lin.xdm --container Lin/LinGlobalConfig/LinChannel --create 2
  arcfg instances Lin.xdm --container Lin/LinGlobalConfig/LinChannel \
      --switch 1 --set LinChannelBaudRate=9600
  arcfg instances Lin.xdm --container Lin/LinGlobalConfig/LinChannel --copy 0`,
	Args: cobra.ExactArgs(1),
	RunE: runInstances,
}

func init() {
	rootCmd.AddCommand(instancesCmd)
	f := instancesCmd.Flags()
	f.StringVar(&instancesFlags.container, "container", "", "container path to operate on (required)")
	f.StringVar(&instancesFlags.format, "format", "", "output format: json or text (default from config)")
	f.IntVar(&instancesFlags.create, "create", 0, "create this many fresh instances")
	f.IntVar(&instancesFlags.deleteID, "delete", 0, "delete the instance with this id")
	f.IntVar(&instancesFlags.switchTo, "switch", 0, "make this instance current")
	f.BoolVar(&instancesFlags.next, "next", false, "advance the current instance, wrapping")
	f.IntVar(&instancesFlags.copyFrom, "copy", 0, "copy this instance's values onto a fresh instance")
	f.StringArrayVar(&instancesFlags.sets, "set", nil, "set a variable on the current instance, as name=value")
	f.IntVar(&instancesFlags.resetID, "reset", 0, "reset the instance with this id to defaults")
	f.BoolVar(&instancesFlags.resetAll, "reset-all", false, "reset every container to a single default instance")
	instancesCmd.MarkFlagRequired("container")
}

func runInstances(cmd *cobra.Command, args []string) error {
	cfg, _, proc, err := setup()
	if err != nil {
		return err
	}
	formatter, format := formatterFor(cfg, instancesFlags.format)

	res, err := proc.ParseFile(args[0])
	if err != nil {
		cli.RenderError(os.Stderr, err, format)
		return cli.NewCommandError("instances", err)
	}

	if err := applyInstanceOps(cmd, res.Model); err != nil {
		cli.RenderError(os.Stderr, err, format)
		return cli.NewCommandError("instances", err)
	}

	path := instancesFlags.container
	list, err := res.Model.ListInstances(path)
	if err != nil {
		cli.RenderError(os.Stderr, err, format)
		return cli.NewCommandError("instances", err)
	}
	body := instancesBody{
		Success:   true,
		Container: path,
		Current:   res.Model.CurrentInstance(path),
		Count:     res.Model.InstanceCount(path),
		Instances: list,
		Modified:  res.Model.ModifiedVariables(),
		History:   res.Model.History(),
	}

	if format == cli.FormatText {
		fmt.Fprintf(os.Stdout, "%s: %d instances, current %d\n", path, body.Count, body.Current)
		for _, inst := range body.Instances {
			fmt.Fprintf(os.Stdout, "  [%d] %s\n", inst.ID, inst.Name)
		}
		return nil
	}
	return formatter.FormatTo(os.Stdout, body)
}

// applyInstanceOps runs the requested operations in a fixed order.
func applyInstanceOps(cmd *cobra.Command, m *model.Model) error {
	path := instancesFlags.container
	if _, err := m.Container(path); err != nil {
		return err
	}

	for i := 0; i < instancesFlags.create; i++ {
		if _, err := m.CreateInstance(path); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("delete") {
		if err := m.DeleteInstance(path, instancesFlags.deleteID); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("switch") {
		if err := m.SwitchInstance(path, instancesFlags.switchTo); err != nil {
			return err
		}
	}
	if instancesFlags.next {
		if _, err := m.SwitchNext(path); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("copy") {
		if _, err := m.CopyInstance(path, instancesFlags.copyFrom, model.CurrentID); err != nil {
			return err
		}
	}
	for _, kv := range instancesFlags.sets {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || name == "" {
			return fmt.Errorf("invalid --set %q, want name=value", kv)
		}
		if err := m.SetVariableValue(path, name, value, model.CurrentID); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("reset") {
		if err := m.ResetInstance(path, instancesFlags.resetID); err != nil {
			return err
		}
	}
	if instancesFlags.resetAll {
		m.ResetToDefaults()
	}
	return nil
}
