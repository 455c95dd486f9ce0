package i18n

// Config holds resource store settings loaded from the environment.
type Config struct {
	// Dir is a directory of section files, used by the "fs" source.
	Dir string `env:"RESX_DIR" envDefault:"resources"`
	// File is a single lang => section => key document, used by the "file" source.
	File            string `env:"RESX_FILE"`
	DefaultLanguage string `env:"RESX_DEFAULT_LANG" envDefault:"en"`
	LogMissing      bool   `env:"RESX_LOG_MISSING" envDefault:"false"`
}

// Options translates cfg into translator options.
func (cfg Config) Options() []Option {
	return []Option{
		WithDefaultLanguage(cfg.DefaultLanguage),
		WithMissingTranslationsLogging(cfg.LogMissing),
	}
}
