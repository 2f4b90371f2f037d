package prefabs

import (
	"fmt"
	"sort"
	"time"

	"gopkg.in/yaml.v3"
)

// CatalogFile is the prefab file listing the AoE projectile kinds.
const CatalogFile = "aoe_projectiles.yaml"

// AoEProjectileInfo describes a projectile kind that leaves a ground warning.
type AoEProjectileInfo struct {
	ID         int    `yaml:"id"`
	Name       string `yaml:"name"`
	LifetimeMS int    `yaml:"lifetime_ms"`
	EffectSize int    `yaml:"effect_size"`
}

// Lifetime returns how long the warning stays on the ground.
func (i AoEProjectileInfo) Lifetime() time.Duration {
	return time.Duration(i.LifetimeMS) * time.Millisecond
}

type catalogSpec struct {
	Projectiles []AoEProjectileInfo `yaml:"projectiles"`
}

// Catalog indexes AoE projectile kinds by projectile id.
type Catalog struct {
	byID map[int]AoEProjectileInfo
}

// Lookup returns the info for a projectile id, if it is an AoE kind.
func (c *Catalog) Lookup(id int) (AoEProjectileInfo, bool) {
	if c == nil {
		return AoEProjectileInfo{}, false
	}
	info, ok := c.byID[id]
	return info, ok
}

// IDs returns the known projectile ids in ascending order.
func (c *Catalog) IDs() []int {
	if c == nil {
		return nil
	}
	ids := make([]int, 0, len(c.byID))
	for id := range c.byID {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.byID)
}

// ParseCatalog decodes and validates catalog yaml.
func ParseCatalog(data []byte) (*Catalog, error) {
	var spec catalogSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal catalog: %w", err)
	}

	c := &Catalog{byID: make(map[int]AoEProjectileInfo, len(spec.Projectiles))}
	for _, info := range spec.Projectiles {
		if info.ID <= 0 {
			return nil, fmt.Errorf("prefabs: catalog entry %q: id must be positive", info.Name)
		}
		if info.LifetimeMS <= 0 {
			return nil, fmt.Errorf("prefabs: catalog entry %d: lifetime_ms must be positive", info.ID)
		}
		if info.EffectSize <= 0 {
			return nil, fmt.Errorf("prefabs: catalog entry %d: effect_size must be positive", info.ID)
		}
		if _, dup := c.byID[info.ID]; dup {
			return nil, fmt.Errorf("prefabs: catalog entry %d: duplicate id", info.ID)
		}
		c.byID[info.ID] = info
	}
	return c, nil
}

// LoadCatalog reads the AoE projectile catalog.
func LoadCatalog() (*Catalog, error) {
	data, err := Load(CatalogFile)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load %s: %w", CatalogFile, err)
	}
	return ParseCatalog(data)
}
