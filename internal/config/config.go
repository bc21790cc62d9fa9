// Package config loads settings from ~/.termfolio.yaml and TERMFOLIO_*
// environment variables.
package config

import (
	"errors"
	"log"
	"os"
	"strings"
	"time"

	"github.com/avitaltamir/termfolio/internal/contact"
	"github.com/spf13/viper"
)

// Keys
const (
	KeyStateDir    = "state_dir"
	KeyContentPath = "content_path"
	KeyDebugLog    = "debug_log"
	KeyNerdFonts   = "nerd_fonts"
	KeyWatch       = "watch_content"

	KeyContactEndpoint   = "contact.endpoint"
	KeyContactServiceID  = "contact.service_id"
	KeyContactTemplateID = "contact.template_id"
	KeyContactPublicKey  = "contact.public_key"
	KeyContactToName     = "contact.to_name"
	KeyContactToEmail    = "contact.to_email"
	KeyContactTimeout    = "contact.timeout"
)

// Settings is a snapshot of the loaded configuration.
type Settings struct {
	StateDir     string
	ContentPath  string
	DebugLog     string
	NerdFonts    bool
	WatchContent bool
	Contact      contact.EmailJSConfig
}

// SetDefaults registers defaults and environment bindings on v.
func SetDefaults(v *viper.Viper) {
	// contact.to_name is read from TERMFOLIO_CONTACT_TO_NAME
	v.SetEnvPrefix("termfolio")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyStateDir, "")
	v.SetDefault(KeyContentPath, "")
	v.SetDefault(KeyDebugLog, "")
	v.SetDefault(KeyNerdFonts, true)
	v.SetDefault(KeyWatch, true)
	v.SetDefault(KeyContactEndpoint, contact.DefaultEndpoint)
	v.SetDefault(KeyContactTimeout, 15*time.Second)
}

// Init loads configuration into v. An explicit cfgFile must exist; otherwise
// ~/.termfolio.yaml is read if present.
func Init(v *viper.Viper, cfgFile string) error {
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		return v.ReadInConfig()
	}

	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	v.SetConfigType("yaml")
	v.SetConfigName(".termfolio")
	v.AddConfigPath(home)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
		log.Printf("config: no config file, using defaults")
	}
	return nil
}

// Load reads a Settings snapshot from v.
func Load(v *viper.Viper) Settings {
	return Settings{
		StateDir:     v.GetString(KeyStateDir),
		ContentPath:  v.GetString(KeyContentPath),
		DebugLog:     v.GetString(KeyDebugLog),
		NerdFonts:    v.GetBool(KeyNerdFonts),
		WatchContent: v.GetBool(KeyWatch),
		Contact: contact.EmailJSConfig{
			Endpoint:   v.GetString(KeyContactEndpoint),
			ServiceID:  v.GetString(KeyContactServiceID),
			TemplateID: v.GetString(KeyContactTemplateID),
			PublicKey:  v.GetString(KeyContactPublicKey),
			ToName:     v.GetString(KeyContactToName),
			ToEmail:    v.GetString(KeyContactToEmail),
			Timeout:    v.GetDuration(KeyContactTimeout),
		},
	}
}
