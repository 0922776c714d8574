// Package config loads the settings of the profile tools from YAML.
//
// Example:
//
//	log_level: debug
//	unknown_attributes: ignore
//	profile: ~/profiles/stream.xml
//	elements:
//	  megaphone: megaphoneEffect
//
// Unset fields keep the values of [Default].
package config
