// Package checker implements the per-family validation rules for Pixel
// power-hint and thermal JSON configuration files.
package checker

import (
	"fmt"
)

// PowerHintConfig is the decoded shape of a powerhint JSON config file.
type PowerHintConfig struct {
	Nodes   []PowerHintNode   `json:"Nodes"`
	Actions []PowerHintAction `json:"Actions"`
}

// PowerHintNode declares a tunable node and the values it accepts.
type PowerHintNode struct {
	Name   string   `json:"Name"`
	Values []string `json:"Values"`
}

// PowerHintAction references either a node (with a value the node must
// support) or another declared hint. Type and Node are pointers because
// their presence, not their content, decides which checks apply.
type PowerHintAction struct {
	PowerHint string  `json:"PowerHint"`
	Type      *string `json:"Type"`
	Node      *string `json:"Node"`
	Value     string  `json:"Value"`
}

// PowerHintFile pairs a config with the repository path it was read from,
// preserving the order files were collected in.
type PowerHintFile struct {
	Path   string
	Config PowerHintConfig
}

// CheckPowerHint validates node and action cross-references for each file:
// node names must be unique, hint-typed actions must reference a declared
// hint, and node-targeting actions must name an existing node and one of
// its supported values. The first violation aborts the run.
func CheckPowerHint(files []PowerHintFile) error {
	for _, f := range files {
		if err := checkPowerHintFile(f); err != nil {
			return err
		}
	}
	return nil
}

func checkPowerHintFile(f PowerHintFile) error {
	nodes := make(map[string]map[string]struct{}, len(f.Config.Nodes))
	for _, node := range f.Config.Nodes {
		if _, ok := nodes[node.Name]; ok {
			return fmt.Errorf("%s: repeated node %s", f.Path, node.Name)
		}
		values := make(map[string]struct{}, len(node.Values))
		for _, v := range node.Values {
			values[v] = struct{}{}
		}
		nodes[node.Name] = values
	}

	hints := make(map[string]struct{}, len(f.Config.Actions))
	for _, action := range f.Config.Actions {
		hints[action.PowerHint] = struct{}{}
	}

	for _, action := range f.Config.Actions {
		if action.Type != nil {
			if _, ok := hints[action.Value]; !ok {
				return fmt.Errorf("%s: Action %s: unknown Hint %s", f.Path, action.PowerHint, action.Value)
			}
		}

		if action.Node != nil {
			values, ok := nodes[*action.Node]
			if !ok {
				return fmt.Errorf("%s: Action %s: unknown Node %s", f.Path, action.PowerHint, *action.Node)
			}
			if _, ok := values[action.Value]; !ok {
				return fmt.Errorf(
					"%s: Action %s: Node %s unknown value %s",
					f.Path, action.PowerHint, *action.Node, action.Value,
				)
			}
		}
	}

	return nil
}
