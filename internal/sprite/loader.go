package sprite

import (
	"embed"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
)

//go:embed assets/*.txt
var assetsFS embed.FS

// Set holds every decoded sprite sheet the game draws from.
// All sprites are immutable once loaded.
type Set struct {
	Dino     *Sprite
	Duck     *Sprite
	Cactus   *Sprite
	Ptero    *Sprite
	Cloud    *Sprite
	Digits   *Sprite
	GameOver *Sprite
	Logo     *Sprite
}

// assetNames maps each sheet to its source file, in load order.
var assetNames = []struct {
	name string
	file string
}{
	{"dino", "assets/dino.txt"},
	{"duck", "assets/dino_duck.txt"},
	{"cactus", "assets/cactus.txt"},
	{"ptero", "assets/ptero.txt"},
	{"cloud", "assets/cloud.txt"},
	{"digits", "assets/digits.txt"},
	{"gameover", "assets/gameover.txt"},
	{"logo", "assets/logo.txt"},
}

// Load decodes every sprite sheet concurrently and joins on completion.
// The join is order-insensitive: each asset resolves independently and the
// function returns only when all have finished. A failed asset is reported
// in the error slice (and logged when a logger is given) without aborting
// the others; callers must treat a non-empty error slice as "not ready".
func Load(logger *log.Logger) (*Set, []error) {
	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		errs    []error
		decoded = make(map[string]*Sprite, len(assetNames))
	)

	for _, asset := range assetNames {
		wg.Add(1)
		go func(name, file string) {
			defer wg.Done()
			data, err := assetsFS.ReadFile(file)
			if err != nil {
				mu.Lock()
				errs = append(errs, fmt.Errorf("sprite: load %s: %w", name, err))
				mu.Unlock()
				if logger != nil {
					logger.Error("sprite load failed", "asset", name, "error", err)
				}
				return
			}
			s := Decode(string(data))
			mu.Lock()
			decoded[name] = s
			mu.Unlock()
		}(asset.name, asset.file)
	}
	wg.Wait()

	if len(errs) > 0 {
		return nil, errs
	}
	return &Set{
		Dino:     decoded["dino"],
		Duck:     decoded["duck"],
		Cactus:   decoded["cactus"],
		Ptero:    decoded["ptero"],
		Cloud:    decoded["cloud"],
		Digits:   decoded["digits"],
		GameOver: decoded["gameover"],
		Logo:     decoded["logo"],
	}, nil
}
