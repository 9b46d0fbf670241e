package glyphicon

import "fmt"
import "errors"
import "context"
import "path/filepath"

import "github.com/tinne26/glyphicon/export"
import "github.com/tinne26/glyphicon/internal/logger"

// Writes the rendered assets of the plan to the configured directories
// and returns a report of the written files.
//
// If the ICNS file can't be packaged with iconutil in iconutil mode, a
// warning is logged and the remaining files are still written.
func (self *Generator) Write(ctx context.Context, plan export.Plan, assets *Assets) (export.Report, error) {
	var report export.Report
	log := logger.Logger()

	for _, target := range plan.Targets {
		err := ctx.Err()
		if err != nil { return report, err }
		img := assets.Image(target.Image())
		if img == nil { return report, fmt.Errorf("%s: image not rendered", target.Name) }
		path := self.targetPath(target)
		bytes, err := export.WritePNG(path, img)
		if err != nil { return report, fmt.Errorf("writing %s: %w", target.Name, err) }
		report.Add(export.Entry{ Name: target.Name, Path: path, Size: target.Size, Bytes: bytes })
		log.Debug("icon written", "path", path, "bytes", bytes)
	}

	if plan.ICNSName != "" && len(plan.Iconset) > 0 {
		entries := make([]export.IconsetImage, 0, len(plan.Iconset))
		for _, target := range plan.Iconset {
			img := assets.Image(target.Image())
			if img == nil { return report, fmt.Errorf("%s: image not rendered", target.Name) }
			entries = append(entries, export.IconsetImage{ Name: target.Name, Image: img })
		}
		path := filepath.Join(self.iconsDir, plan.ICNSName)
		bytes, err := export.WriteICNS(ctx, path, plan.IconsetName, entries, self.icnsMode)
		switch {
		case errors.Is(err, export.ErrIconutil):
			log.Warn("icns not written, iconutil is only available on macOS", "err", err)
		case err != nil:
			return report, fmt.Errorf("writing %s: %w", plan.ICNSName, err)
		default:
			report.Add(export.Entry{ Name: plan.ICNSName, Path: path, Bytes: bytes })
		}
	}

	if plan.ICOName != "" && len(plan.ICOSizes) > 0 {
		err := ctx.Err()
		if err != nil { return report, err }
		src := assets.Image(export.ImageKey{ Kind: export.KindApp, Size: plan.ICOSource })
		if src == nil { return report, fmt.Errorf("%s: source image not rendered", plan.ICOName) }
		path := filepath.Join(self.iconsDir, plan.ICOName)
		bytes, err := export.WriteICO(path, src, plan.ICOSizes)
		if err != nil { return report, fmt.Errorf("writing %s: %w", plan.ICOName, err) }
		report.Add(export.Entry{ Name: plan.ICOName, Path: path, Bytes: bytes })
	}

	log.Info("icons written", "files", len(report.Entries), "bytes", report.TotalBytes())
	return report, nil
}

// Renders and writes the default plan.
func (self *Generator) Generate(ctx context.Context) (export.Report, error) {
	plan := export.DefaultPlan()
	assets, err := self.Render(ctx, plan)
	if err != nil { return export.Report{}, err }
	return self.Write(ctx, plan, assets)
}

func (self *Generator) targetPath(target export.Target) string {
	if target.Dir == export.StaticDir {
		return filepath.Join(self.staticDir, target.Name)
	}
	return filepath.Join(self.iconsDir, target.Name)
}
