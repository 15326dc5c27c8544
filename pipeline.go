package cornstats

import (
	"fmt"
	"log/slog"
	"path/filepath"
)

// Config holds the only externally variable settings: where the raw data
// lives and where outputs go.
type Config struct {
	DataPath  string `mapstructure:"data_path" yaml:"data_path"`
	DataDir   string `mapstructure:"data_dir" yaml:"data_dir"`
	OutputDir string `mapstructure:"output_dir" yaml:"output_dir"`
}

func DefaultConfig() Config {
	return Config{
		DataPath:  filepath.Join("data", "raw", "precision_ag_corn_yields.csv"),
		DataDir:   "data",
		OutputDir: "output",
	}
}

func (c Config) CleanPath() string {
	return filepath.Join(c.DataDir, "processed", "corn_yields_clean.csv")
}

func (c Config) TablePath(name string) string {
	return filepath.Join(c.OutputDir, "tables", name)
}

func (c Config) FiguresDir() string {
	return filepath.Join(c.OutputDir, "figures")
}

// Run executes the whole pipeline once: load, clean, describe, visualize,
// test, model, export. The first structural failure aborts the run; outputs
// of completed stages stay on disk.
func Run(cfg Config, lg *slog.Logger) error {
	if lg == nil {
		lg = slog.Default()
	}

	files := NewFiles()

	raw, e := files.Load(cfg.DataPath)
	if e != nil {
		return e
	}
	lg.Info("loaded raw data", "path", cfg.DataPath,
		"rows", raw.RowCount(), "columns", raw.ColumnCount())
	fmt.Println(raw)

	fr, e1 := Clean(raw)
	if e1 != nil {
		return e1
	}
	if e2 := files.WriteFrame(cfg.CleanPath(), fr, StageClean); e2 != nil {
		return e2
	}
	lg.Info("cleaned", "rows", fr.RowCount(), "dropped", raw.RowCount()-fr.RowCount(),
		"clean_copy", cfg.CleanPath())

	miss := Missingness(fr)
	if e2 := miss.WriteCSV(cfg.TablePath("missingness_summary.csv")); e2 != nil {
		return e2
	}

	desc, e3 := Descriptives(fr)
	if e3 != nil {
		return e3
	}
	if e4 := desc.WriteCSV(cfg.TablePath("descriptive_summary.csv")); e4 != nil {
		return e4
	}

	fmt.Println(Profile(fr))

	if e5 := Figures(fr, cfg.FiguresDir()); e5 != nil {
		return e5
	}
	lg.Info("wrote figures", "dir", cfg.FiguresDir())

	tt, e6 := WelchTTest(fr)
	if e6 != nil {
		return e6
	}
	ttTbl := tt.Table()
	if e7 := ttTbl.WriteCSV(cfg.TablePath("ttest_yield_by_high_precision.csv")); e7 != nil {
		return e7
	}
	fmt.Println(ttTbl)

	results := make([]*OLSResult, 0, len(ModelSpecs))
	for _, spec := range ModelSpecs {
		res, e8 := FitOLS(fr, spec)
		if e8 != nil {
			return e8
		}

		coefs := res.CoefficientTable()
		if e9 := coefs.WriteCSV(cfg.TablePath("model_" + spec.Name + "_coefficients.csv")); e9 != nil {
			return e9
		}

		fmt.Printf("model %s: n=%d\n", spec.Name, res.N)
		fmt.Println(coefs)
		results = append(results, res)
	}

	fit := FitSummaryTable(results...)
	if e10 := fit.WriteCSV(cfg.TablePath("model_fit_summary.csv")); e10 != nil {
		return e10
	}
	fmt.Println(fit)

	tables := []*Table{miss, desc, ttTbl}
	for _, res := range results {
		tables = append(tables, res.CoefficientTable())
	}
	tables = append(tables, fit)
	if e11 := WriteWorkbook(cfg.TablePath("analysis_results.xlsx"), tables...); e11 != nil {
		return e11
	}
	lg.Info("wrote tables", "dir", cfg.TablePath(""))

	return nil
}
