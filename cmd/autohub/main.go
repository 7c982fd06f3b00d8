// Command autohub is a terminal client for the AutoHub API.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/PrinceEeppakayal/Autohub-Car-Selling-Website/pkg/webclient"

	"github.com/spf13/pflag"
)

const defaultAPIURL = "http://localhost:3000"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

// errReported marks failures the pipeline already printed.
var errReported = errors.New("reported")

type formCommand struct {
	config func(*webclient.Client) *webclient.FormConfig
	flags  map[string]string // flag name -> logical field
}

var formCommands = map[string]formCommand{
	"login": {
		config: webclient.LoginForm,
		flags:  map[string]string{"email": "email", "password": "password"},
	},
	"register": {
		config: func(*webclient.Client) *webclient.FormConfig { return webclient.RegisterForm() },
		flags: map[string]string{
			"first-name": "firstName", "last-name": "lastName", "email": "email", "phone": "phone",
			"password": "password", "confirm-password": "confirmPassword", "agree-terms": "termsAgree",
		},
	},
	"contact": {
		config: func(*webclient.Client) *webclient.FormConfig { return webclient.ContactForm() },
		flags:  map[string]string{"name": "name", "email": "email", "phone": "phone", "interest": "interest", "message": "message"},
	},
	"test-drive": {
		config: func(*webclient.Client) *webclient.FormConfig { return webclient.TestDriveForm() },
		flags: map[string]string{
			"car": "carModel", "name": "name", "email": "email", "phone": "phone",
			"date": "preferredDate", "time": "preferredTime",
		},
	},
	"financing": {
		config: func(*webclient.Client) *webclient.FormConfig { return webclient.FinancingForm() },
		flags: map[string]string{
			"name": "name", "email": "email", "phone": "phone",
			"amount": "amount", "term": "term", "message": "message",
		},
	},
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	apiURL := os.Getenv("AUTOHUB_API_URL")
	if apiURL == "" {
		apiURL = defaultAPIURL
	}

	global := pflag.NewFlagSet("autohub", pflag.ContinueOnError)
	global.SetOutput(stderr)
	global.SetInterspersed(false)
	global.StringVar(&apiURL, "api", apiURL, "AutoHub API base URL")
	storePath := global.String("store", webclient.DefaultStorePath(), "credential file")
	global.Usage = func() { printUsage(stderr, global) }

	if err := global.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}
	if global.NArg() == 0 {
		printUsage(stderr, global)
		return errors.New("no command given")
	}

	client := webclient.NewClient(apiURL, webclient.NewFileStore(*storePath))
	command, rest := global.Arg(0), global.Args()[1:]

	switch command {
	case "logout":
		if err := client.Logout(); err != nil {
			return err
		}
		fmt.Fprintln(stdout, "Logged out.")
		return nil
	case "whoami":
		if user := client.CurrentUser(); user != nil {
			fmt.Fprintf(stdout, "Logged in as %s (%s)\n", user.DisplayName(), user.Email)
		} else {
			fmt.Fprintln(stdout, "Not logged in.")
		}
		return nil
	case "my-test-drives":
		return listTestDrives(ctx, client, stdout)
	}

	fc, ok := formCommands[command]
	if !ok {
		printUsage(stderr, global)
		return fmt.Errorf("unknown command %q", command)
	}
	return submitForm(ctx, client, command, fc, rest, stdin, stdout, stderr)
}

func submitForm(ctx context.Context, client *webclient.Client, command string, fc formCommand, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := pflag.NewFlagSet("autohub "+command, pflag.ContinueOnError)
	fs.SetOutput(stderr)
	values := make(map[string]*string, len(fc.flags))
	for name, field := range fc.flags {
		values[field] = fs.String(name, "", field)
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	given := make(map[string]string, len(values))
	for field, v := range values {
		given[field] = *v
	}

	cfg := fc.config(client)
	feedback := &terminalFeedback{out: stdout, errOut: stderr}
	pipeline := webclient.NewPipeline(client, feedback)
	if _, err := pipeline.Submit(ctx, cfg, newPromptForm(cfg, given, stdin, stdout)); err != nil {
		return fmt.Errorf("%s: %w", command, errReported)
	}

	if command == "login" {
		if user := client.CurrentUser(); user != nil {
			fmt.Fprintf(stdout, "Welcome, %s!\n", user.DisplayName())
		}
	}
	return nil
}

func listTestDrives(ctx context.Context, client *webclient.Client, stdout io.Writer) error {
	if !client.LoggedIn() {
		return errors.New("Please log in to view your test drives.")
	}
	drives, err := client.MyTestDrives(ctx)
	if err != nil {
		return err
	}
	if len(drives) == 0 {
		fmt.Fprintln(stdout, "You have no scheduled test drives.")
		return nil
	}
	for _, d := range drives {
		fmt.Fprintf(stdout, "#%d  %-24s %s %s\n", d.ID, d.CarModel, d.PreferredDate, d.PreferredTime)
	}
	return nil
}

func printUsage(w io.Writer, global *pflag.FlagSet) {
	fmt.Fprintln(w, `Usage: autohub [--api URL] [--store PATH] <command> [flags]

Commands:
  login            sign in and remember the token
  register         create an account
  logout           forget stored credentials
  whoami           show the signed in user
  test-drive       schedule a test drive
  contact          send a message to the dealership
  financing        request financing
  my-test-drives   list your scheduled test drives

Missing values are asked for interactively.

Global flags:`)
	fmt.Fprint(w, global.FlagUsages())
}
