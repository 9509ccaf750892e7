package cmd

import (
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"

	"github.com/out-of-cheese-error/go-hypothesis/internal/cmd/base"
	"github.com/out-of-cheese-error/go-hypothesis/internal/cmd/commands/annotations"
	"github.com/out-of-cheese-error/go-hypothesis/internal/cmd/commands/groups"
	"github.com/out-of-cheese-error/go-hypothesis/internal/cmd/commands/profile"
	"github.com/out-of-cheese-error/go-hypothesis/internal/cmd/commands/versioncmd"
)

// Commands is the command registry consumed by the CLI runner.
var Commands map[string]cli.CommandFactory

// initCommands populates the registry. Each leaf command gets its own base
// so flag state is never shared between commands.
func initCommands(log hclog.Logger, ui cli.Ui, fs afero.Fs, factory base.ClientFactory) {
	newBase := func() *base.Command {
		return &base.Command{
			UI:      ui,
			Log:     log,
			Fs:      fs,
			Factory: factory,
		}
	}

	Commands = map[string]cli.CommandFactory{
		"annotations": func() (cli.Command, error) {
			return &annotations.Command{Command: newBase()}, nil
		},
		"annotations create": func() (cli.Command, error) {
			return &annotations.CreateCommand{Command: newBase()}, nil
		},
		"annotations update": func() (cli.Command, error) {
			return &annotations.UpdateCommand{Command: newBase()}, nil
		},
		"annotations search": func() (cli.Command, error) {
			return &annotations.SearchCommand{Command: newBase()}, nil
		},
		"annotations fetch": func() (cli.Command, error) {
			return &annotations.FetchCommand{Command: newBase()}, nil
		},
		"annotations delete": func() (cli.Command, error) {
			return annotations.NewDeleteCommand(newBase()), nil
		},
		"annotations flag": func() (cli.Command, error) {
			return annotations.NewFlagCommand(newBase()), nil
		},
		"annotations hide": func() (cli.Command, error) {
			return annotations.NewHideCommand(newBase()), nil
		},
		"annotations show": func() (cli.Command, error) {
			return annotations.NewShowCommand(newBase()), nil
		},
		"groups": func() (cli.Command, error) {
			return &groups.Command{Command: newBase()}, nil
		},
		"groups list": func() (cli.Command, error) {
			return &groups.ListCommand{Command: newBase()}, nil
		},
		"groups create": func() (cli.Command, error) {
			return &groups.CreateCommand{Command: newBase()}, nil
		},
		"groups fetch": func() (cli.Command, error) {
			return &groups.FetchCommand{Command: newBase()}, nil
		},
		"groups update": func() (cli.Command, error) {
			return &groups.UpdateCommand{Command: newBase()}, nil
		},
		"groups members": func() (cli.Command, error) {
			return &groups.MembersCommand{Command: newBase()}, nil
		},
		"groups leave": func() (cli.Command, error) {
			return &groups.LeaveCommand{Command: newBase()}, nil
		},
		"profile": func() (cli.Command, error) {
			return &profile.Command{Command: newBase()}, nil
		},
		"profile user": func() (cli.Command, error) {
			return &profile.UserCommand{Command: newBase()}, nil
		},
		"profile groups": func() (cli.Command, error) {
			return &profile.GroupsCommand{Command: newBase()}, nil
		},
		"version": func() (cli.Command, error) {
			return &versioncmd.Command{Command: newBase()}, nil
		},
	}
}
