package cli

import (
	"regexp"
	"strings"

	"github.com/spf13/cobra"
)

var (
	sectionHeaderRe  = regexp.MustCompile(`^[A-Z][A-Za-z ]+:$`)
	commandListingRe = regexp.MustCompile(`^( {2})(\S+)(\s{2,}.*)$`)
	flagLineRe       = regexp.MustCompile(`^( +)(-.+?)( {2,}.*)$`)
)

// colorizedHelpFunc renders cobra's usage text with section headers,
// command names and flags highlighted.
func colorizedHelpFunc() func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()

		var buf strings.Builder
		cmd.SetOut(&buf)
		cmd.InitDefaultHelpFlag()
		if cmd.Long != "" {
			buf.WriteString(cmd.Long + "\n\n")
		}
		_ = cmd.Usage()
		cmd.SetOut(out)

		var b strings.Builder
		for _, line := range strings.Split(strings.TrimRight(buf.String(), "\n"), "\n") {
			b.WriteString(colorizeLine(line))
			b.WriteString("\n")
		}
		cmd.Print(b.String())
	}
}

func colorizeLine(line string) string {
	trimmed := strings.TrimSpace(line)
	switch {
	case sectionHeaderRe.MatchString(trimmed):
		return Info(line)
	case strings.HasPrefix(trimmed, `Use "`):
		return Silent(line)
	}
	if m := flagLineRe.FindStringSubmatch(line); m != nil {
		return m[1] + Primary(m[2]) + m[3]
	}
	if m := commandListingRe.FindStringSubmatch(line); m != nil {
		return m[1] + Primary(m[2]) + m[3]
	}
	return line
}
