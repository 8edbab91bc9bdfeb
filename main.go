package main

import (
	"fmt"

	"github.com/alecthomas/kong"
	"github.com/edaniels/golog"
	"gonum.org/v1/gonum/mat"

	"github.com/jdginn/go-lidar-sim/lidar"
	lidarConfig "github.com/jdginn/go-lidar-sim/lidar/config"
	lidarRun "github.com/jdginn/go-lidar-sim/lidar/run"
)

const defaultCellSize = 4

var logger = golog.NewDevelopmentLogger("lidarsim")

var CLI struct {
	Scan     ScanCmd     `cmd:"" help:"Simulate a LIDAR along a trajectory and render the results"`
	Validate ValidateCmd `cmd:"" help:"Check a scan config without running it"`
}

func load(path string) (*lidarConfig.ScanConfig, *lidar.Simulator, error) {
	config, err := lidarConfig.LoadFromFile(path, lidarConfig.LoadOptions{
		ValidateImmediately: true,
		ResolvePaths:        true,
		MergeFiles:          true,
	})
	if err != nil {
		return nil, nil, err
	}

	sim, err := config.Sensor.Create()
	if err != nil {
		return nil, nil, fmt.Errorf("creating simulator: %w", err)
	}
	if config.Output.ProfileRow >= sim.Height() {
		return nil, nil, fmt.Errorf("output.profile_row %d: sensor has %d latitudes", config.Output.ProfileRow, sim.Height())
	}
	return config, sim, nil
}

type ValidateCmd struct {
	Config string `arg:"" name:"config" help:"scan config to check" type:"existingfile"`
}

func (c ValidateCmd) Run() error {
	config, sim, err := load(c.Config)
	if err != nil {
		return err
	}
	logger.Infow("config ok",
		"config", c.Config,
		"latitudes", sim.Height(),
		"longitudes", sim.Width(),
		"planes", len(config.Scene.Planes.Inline),
		"poses", len(config.Trajectory),
	)
	return nil
}

type ScanCmd struct {
	Config    string `arg:"" name:"config" help:"scan config to simulate" type:"existingfile"`
	SkipImage bool   `name:"skip-image" help:"don't render range images"`
	SkipPlot  bool   `name:"skip-plot" help:"don't plot range profiles"`
}

func (c ScanCmd) Run() error {
	config, sim, err := load(c.Config)
	if err != nil {
		return err
	}

	runDir, err := lidarRun.CreateDirectory(config.Output.Dir, logger)
	if err != nil {
		return fmt.Errorf("creating run directory: %w", err)
	}
	if err := runDir.CopyFile(c.Config); err != nil {
		return fmt.Errorf("copying config file: %w", err)
	}
	if err := lidarConfig.SaveToFile(config, runDir.FilePath("resolved.yaml")); err != nil {
		logger.Warnw("not saving resolved config", "error", err)
	}
	logger.Infow("run started", "id", runDir.ID, "dir", runDir.Path)

	cellSize := config.Output.CellSize
	if cellSize == 0 {
		cellSize = defaultCellSize
	}

	scene := config.Scene.Create()
	ranges := mat.NewDense(sim.Height(), sim.Width(), nil)
	cloud := &lidar.StructuredCloud{}
	for i, pose := range config.Poses() {
		if err := sim.ScanInto(ranges, cloud, scene, pose); err != nil {
			return fmt.Errorf("pose %d: %w", i, err)
		}

		stats := lidar.Stats(ranges)
		logger.Infow("scan",
			"pose", i,
			"returns", stats.Returns,
			"cells", stats.Cells,
			"min_range", stats.Min,
			"max_range", stats.Max,
		)
		if stats.Returns < stats.Cells {
			logger.Debugw("beams without a return", "pose", i, "count", stats.Cells-stats.Returns)
		}

		if !c.SkipImage {
			path := runDir.FilePath(fmt.Sprintf("ranges_%03d.png", i))
			if err := lidar.SaveRangeImage(path, ranges, config.Output.MaxRange, cellSize); err != nil {
				return fmt.Errorf("saving range image: %w", err)
			}
		}
		if !c.SkipPlot {
			path := runDir.FilePath(fmt.Sprintf("profile_%03d.png", i))
			if err := lidar.SaveRangeProfile(path, ranges, config.Output.ProfileRow, sim.Longitudes()); err != nil {
				return fmt.Errorf("saving range profile: %w", err)
			}
		}
	}

	logger.Infow("run finished", "id", runDir.ID, "poses", len(config.Trajectory))
	return nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("lidarsim"),
		kong.Description("Synthetic LIDAR range scans of plane scenes."),
	)
	ctx.FatalIfErrorf(ctx.Run())
}
