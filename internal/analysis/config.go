package analysis

// Config contains the batch analysis settings. Relative paths resolve
// against Root.
type Config struct {
	DataPath     string `env:"DATA_PATH"      envDefault:"data/raw/Phelps2016.xlsx"`
	Root         string `env:"PROJECT_ROOT"   envDefault:"."`
	DatasetName  string `env:"DATASET_NAME"   envDefault:"Phelps et al. 2016"`
	PlotsEnabled bool   `env:"PLOTS_ENABLED"  envDefault:"true"`
	AIEnabled    bool   `env:"AI_ENABLED"     envDefault:"true"`
	Model        string `env:"ANALYSIS_MODEL"`
}
