package main

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/gousaiyang/colorlabels/cliout"
	"github.com/gousaiyang/colorlabels/progress"
	"github.com/spf13/cobra"
)

func newOverviewCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "overview",
		Short: "Print one label of every kind",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.overview()
		},
	}
}

func newTestsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tests",
		Short: "Simulate a test run reported with labels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.interruptible(cmd.Context(), a.testRun)
		},
	}
}

func newLoginCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Simulate an interactive login and update check",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.interruptible(cmd.Context(), a.login)
		},
	}
}

func newColorsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "colors",
		Short: "List the color names accepted by --color and config files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range cliout.ColorNames() {
				col, err := cliout.ParseColor(name)
				if err != nil {
					return err
				}
				if err := a.console.Print(cliout.KindPlain, name, cliout.Override{Color: &col}); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func (a *app) welcome() {
	c := a.console
	c.Section("ColorLabels Demo")
	c.Newline()
	c.Item("1. Overview of Labels")
	c.Item("2. Show Demo 1")
	c.Item("3. Show Demo 2")
	c.Item("4. Exit")
	c.Newline()
}

func (a *app) menuOption() (int, error) {
	for {
		option, err := a.console.Input("Input your option: ", cliout.Override{})
		if err != nil {
			return 0, err
		}
		switch strings.TrimSpace(option) {
		case "1":
			return 1, nil
		case "2":
			return 2, nil
		case "3":
			return 3, nil
		case "4":
			return 4, nil
		}
	}
}

// menu runs the interactive demo until the user exits or input ends.
func (a *app) menu(ctx context.Context) error {
	c := a.console
	for {
		a.welcome()
		option, err := a.menuOption()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		if option != 4 {
			c.Newline()
		}

		switch option {
		case 1:
			err = a.overview()
		case 2:
			err = a.testRun(ctx)
		case 3:
			err = a.login(ctx)
		default:
			c.Plain("Bye!")
			return nil
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		c.Newline()
		if _, err := c.Input("Press Enter to continue...", cliout.Override{}); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		c.Newline()
	}
}

func (a *app) overview() error {
	c := a.console
	c.Section("Overview of Labels")
	c.Success("Good job! All test cases passed!")
	c.Warning("Warning! Security update delayed!")
	c.Error("Error! Failed to write file!")
	c.Info("Server listening on port 8888.")
	c.Progress("Downloading package, please wait...")
	c.Plain("Nothing interesting.")
	return c.Print(cliout.KindQuestion, "A new version is present, would you like to update? (Y/N)", cliout.Override{})
}

func (a *app) testRun(ctx context.Context) error {
	c := a.console
	c.Section("Demo 1")
	c.Info("Test program started.")

	for i := 1; i <= 4; i++ {
		if err := a.sleep(ctx, time.Second); err != nil {
			return err
		}
		if i < 4 {
			c.Success("Test case %d: Passed", i)
		} else {
			c.Error("Test case %d: Failed", i)
		}
	}
	c.Info("Input: 1111")
	c.Info("Expected output: 2222")
	c.Info("Got: 3333")

	c.Section("Test Result")
	c.Info("3 out of 4 test cases passed.")
	c.Info("Pass rate: 75%%")
	return nil
}

func (a *app) login(ctx context.Context) error {
	c := a.console
	c.Section("Demo 2")

	username, err := a.askUntil(func() (string, error) {
		answer, err := c.Input("Username: ", cliout.Override{})
		return strings.TrimSpace(answer), err
	})
	if err != nil {
		return err
	}
	if _, err := a.askUntil(func() (string, error) {
		return c.Password("Password: ", cliout.Override{})
	}); err != nil {
		return err
	}
	c.Success("Successfully logged in as %s.", username)

	err = progress.Do(ctx, c, "Checking for update...", progress.DefaultSpin(), cliout.Override{},
		func(*progress.Session) error {
			return a.sleep(ctx, 2*time.Second)
		})
	if err != nil {
		return err
	}

	var choice string
	for choice != "y" && choice != "n" {
		answer, err := c.Question("A new version is present, would you like to update? (Y/N)", cliout.Override{})
		if err != nil {
			return err
		}
		choice = strings.ToLower(strings.TrimSpace(answer))
	}

	if choice == "n" {
		c.Warning("Update delayed!")
		return nil
	}

	bar := progress.DefaultDeterminate()
	bar.Width = 30
	err = progress.Do(ctx, c, "Downloading package ", bar, cliout.Override{},
		func(s *progress.Session) error {
			const steps = 10
			for i := 1; i <= steps/2; i++ {
				if err := a.sleep(ctx, 300*time.Millisecond); err != nil {
					return err
				}
				if err := s.Update(float64(i)/steps, ""); err != nil {
					return err
				}
			}
			return nil
		})
	if err != nil {
		return err
	}
	c.Error("Failed to download package. SSL handshake error.")
	return nil
}

// askUntil repeats ask until it returns a non-empty answer.
func (a *app) askUntil(ask func() (string, error)) (string, error) {
	for {
		answer, err := ask()
		if err != nil {
			return "", err
		}
		if answer != "" {
			return answer, nil
		}
	}
}
