// Package cli parses the command surface: list, add, rule, purge, status,
// export and serve. Parsing is deterministic and never reads os.Args so tests
// can pass arbitrary slices.
package cli

import (
	"flag"
	"fmt"
	"io"
	"strconv"

	"cdn_manager/internal/model"
)

// Command names
const (
	CmdList   = "list"
	CmdAdd    = "add"
	CmdRule   = "rule"
	CmdPurge  = "purge"
	CmdStatus = "status"
	CmdExport = "export"
	CmdServe  = "serve"
)

// Args is the parsed command line for one invocation.
type Args struct {
	Command string

	// list
	Provider string

	// add
	Name      string
	OriginURL string
	CDNURL    string
	CacheTTL  int
	Notes     string

	// rule / purge
	OriginID    int
	PathPattern string
	RuleTTL     int
	RuleType    string
	PurgeType   string
	Target      string
	TriggeredBy string

	// export
	Output string

	// serve
	Addr string
}

// ParseArgs parses a subcommand and its flags. The first element selects the
// command; an empty slice yields a usage error.
func ParseArgs(args []string) (*Args, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("missing command: expected one of list|add|rule|purge|status|export|serve")
	}

	parsed := &Args{Command: args[0]}
	rest := args[1:]

	switch parsed.Command {
	case CmdList:
		fs := newFlagSet(CmdList)
		provider := fs.String("provider", "", "Only show origins for this provider")
		if err := fs.Parse(rest); err != nil {
			return nil, err
		}
		parsed.Provider = *provider

	case CmdAdd:
		fs := newFlagSet(CmdAdd)
		provider := fs.String("provider", "cloudflare", "CDN provider label (cloudflare|fastly|cloudfront|bunny)")
		ttl := fs.Int("ttl", 3600, "Default cache TTL in seconds")
		notes := fs.String("notes", "", "Free-text notes")
		if err := fs.Parse(rest); err != nil {
			return nil, err
		}
		if fs.NArg() != 3 {
			return nil, fmt.Errorf("usage: add NAME ORIGIN_URL CDN_URL [flags]")
		}
		parsed.Name = fs.Arg(0)
		parsed.OriginURL = fs.Arg(1)
		parsed.CDNURL = fs.Arg(2)
		parsed.Provider = *provider
		parsed.CacheTTL = *ttl
		parsed.Notes = *notes

	case CmdRule:
		fs := newFlagSet(CmdRule)
		ttl := fs.Int("ttl", 3600, "Rule TTL in seconds")
		ruleType := fs.String("type", model.RuleTypeCache, "Rule type: cache|bypass|stream")
		if err := fs.Parse(rest); err != nil {
			return nil, err
		}
		if fs.NArg() != 2 {
			return nil, fmt.Errorf("usage: rule ORIGIN_ID PATH_PATTERN [flags]")
		}
		id, err := strconv.Atoi(fs.Arg(0))
		if err != nil {
			return nil, fmt.Errorf("origin id must be a number: %q", fs.Arg(0))
		}
		switch *ruleType {
		case model.RuleTypeCache, model.RuleTypeBypass, model.RuleTypeStream:
		default:
			return nil, fmt.Errorf("invalid rule type %q: expected cache|bypass|stream", *ruleType)
		}
		parsed.OriginID = id
		parsed.PathPattern = fs.Arg(1)
		parsed.RuleTTL = *ttl
		parsed.RuleType = *ruleType

	case CmdPurge:
		fs := newFlagSet(CmdPurge)
		purgeType := fs.String("type", model.PurgeTypeFull, "Purge type: full|path|tag")
		target := fs.String("target", "*", "Path pattern or tag to purge")
		by := fs.String("by", "cli", "Actor recorded as triggering the purge")
		if err := fs.Parse(rest); err != nil {
			return nil, err
		}
		if fs.NArg() != 1 {
			return nil, fmt.Errorf("usage: purge ORIGIN_ID [flags]")
		}
		id, err := strconv.Atoi(fs.Arg(0))
		if err != nil {
			return nil, fmt.Errorf("origin id must be a number: %q", fs.Arg(0))
		}
		switch *purgeType {
		case model.PurgeTypeFull, model.PurgeTypePath, model.PurgeTypeTag:
		default:
			return nil, fmt.Errorf("invalid purge type %q: expected full|path|tag", *purgeType)
		}
		parsed.OriginID = id
		parsed.PurgeType = *purgeType
		parsed.Target = *target
		parsed.TriggeredBy = *by

	case CmdStatus:
		fs := newFlagSet(CmdStatus)
		if err := fs.Parse(rest); err != nil {
			return nil, err
		}

	case CmdExport:
		fs := newFlagSet(CmdExport)
		output := fs.String("output", "", "Output file (defaults to the configured export path)")
		if err := fs.Parse(rest); err != nil {
			return nil, err
		}
		parsed.Output = *output

	case CmdServe:
		fs := newFlagSet(CmdServe)
		addr := fs.String("addr", "", "Listen address (defaults to the configured HTTP address)")
		if err := fs.Parse(rest); err != nil {
			return nil, err
		}
		parsed.Addr = *addr

	default:
		return nil, fmt.Errorf("unknown command %q: expected one of list|add|rule|purge|status|export|serve", parsed.Command)
	}

	return parsed, nil
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	// keep flag's own output quiet; errors come back to the caller
	fs.SetOutput(io.Discard)
	return fs
}
