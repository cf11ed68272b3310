package config

import "github.com/spf13/viper"

// setDefaults registers every option key with its default so that
// environment binding and partial config files both resolve completely.
func setDefaults(v *viper.Viper) {
	v.SetDefault("header", DefaultHeader)
	v.SetDefault("class_name", DefaultClassName)
	v.SetDefault("naming", NamingScan)
}
