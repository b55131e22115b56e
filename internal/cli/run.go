package cli

import (
	"fmt"
	"io"

	"cdn_manager/internal/config"
	"cdn_manager/internal/display"
	"cdn_manager/internal/export"
	"cdn_manager/internal/store"
)

// Run executes a parsed non-serve command against the store, writing human
// output to w. The serve command is handled by the caller since it owns the
// HTTP stack.
func Run(args *Args, cfg *config.Config, s *store.Store, w io.Writer) error {
	switch args.Command {
	case CmdList:
		origins, err := s.ListOrigins(args.Provider)
		if err != nil {
			return err
		}
		fmt.Fprint(w, display.OriginList(origins))

	case CmdAdd:
		o, err := s.AddOrigin(store.OriginParams{
			Name:      args.Name,
			OriginURL: args.OriginURL,
			CDNURL:    args.CDNURL,
			Provider:  args.Provider,
			CacheTTL:  args.CacheTTL,
			Notes:     args.Notes,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  %s✓ Origin registered: [%d] %s%s\n\n", display.Green, o.ID, o.Name, display.Reset)

	case CmdRule:
		r, err := s.AddCacheRule(store.RuleParams{
			OriginID:     args.OriginID,
			PathPattern:  args.PathPattern,
			TTL:          args.RuleTTL,
			CacheHeaders: true,
			RuleType:     args.RuleType,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  %s✓ Rule [%d]: %s → TTL %s%s\n\n", display.Green, r.ID, r.PathPattern, display.TTLLabel(r.TTL), display.Reset)

	case CmdPurge:
		ev, err := s.PurgeCache(store.PurgeParams{
			OriginID:    args.OriginID,
			PurgeType:   args.PurgeType,
			Target:      args.Target,
			TriggeredBy: args.TriggeredBy,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  %s✓ Purge queued (event #%d)%s\n", display.Green, ev.ID, display.Reset)
		fmt.Fprintf(w, "  %sOrigin #%d  type=%s  target=%s%s\n\n", display.Yellow, ev.OriginID, ev.PurgeType, ev.Target, display.Reset)

	case CmdStatus:
		summary, err := s.Status()
		if err != nil {
			return err
		}
		fmt.Fprint(w, display.StatusSummary(summary))

	case CmdExport:
		output := args.Output
		if output == "" {
			output = cfg.ExportPath
		}
		payload, err := s.Export()
		if err != nil {
			return err
		}
		path, err := export.WriteJSON(payload, output)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  %s✓ Exported to: %s%s\n\n", display.Green, path, display.Reset)

	default:
		return fmt.Errorf("unknown command %q", args.Command)
	}

	return nil
}
