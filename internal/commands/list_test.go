package commands

import (
	"testing"

	"github.com/spf13/pflag"
)

func TestListCommandPrintsSortedSpiders(t *testing.T) {
	cmd := newListCommand()
	s := testSettings(t)
	newTestProject(t, s, `
[project]
name = "proj"

[[spiders]]
name = "zeta"
start_urls = ["https://z.example.com/"]

[[spiders]]
name = "alpha"
start_urls = ["https://a.example.com/"]
`)
	stdout, _ := bindForTest(t, cmd, s)

	if err := cmd.Run(nil); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if stdout.String() != "alpha\nzeta\n" {
		t.Fatalf("unexpected output: %q", stdout.String())
	}
}

func TestListCommandRejectsOperands(t *testing.T) {
	cmd := newListCommand()
	bindForTest(t, cmd, testSettings(t))
	fs := pflag.NewFlagSet("list", pflag.ContinueOnError)

	if err := cmd.ProcessOptions([]string{"extra"}, fs); err == nil {
		t.Fatal("expected usage error for operands")
	}
}
