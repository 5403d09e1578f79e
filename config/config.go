// Package config loads hosted-deployment overrides for the engine's
// pool and queue sizing defaults from a TOML file, using
// github.com/BurntSushi/toml. The embedded/no-allocation path the core
// engine targets keeps its defaults as plain Go constants (fsm.DefaultPoolSize,
// fsm.DefaultQueueSize); this package is for hosts — like cmd/lfsmctl —
// that want those tunable without a rebuild.
package config

import "github.com/BurntSushi/toml"

// Settings mirrors the fsm package's compile-time-style tunables.
type Settings struct {
	PoolSize  int `toml:"pool_size"`
	QueueSize int `toml:"queue_size"`
}

// Defaults matches fsm.DefaultPoolSize / fsm.DefaultQueueSize, duplicated
// here (rather than imported) so this package has no dependency on the
// core engine and can be reused to configure unrelated consumers.
var Defaults = Settings{PoolSize: 3, QueueSize: 5}

// Load reads path as TOML into Settings, starting from Defaults so a
// partial file only overrides the keys it sets.
func Load(path string) (Settings, error) {
	s := Defaults
	_, err := toml.DecodeFile(path, &s)
	if err != nil {
		return Defaults, err
	}
	return s, nil
}
