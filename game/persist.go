package game

// Load replaces the aquarium contents with the file at path.
func (g *Game) Load(path string) error {
	err := g.aq.Load(path)
	g.metrics.Persist("load", err)
	if err == nil {
		g.metrics.SetCensus(g.aq.Census())
		g.logger.Info("aquarium loaded", "path", path, "items", g.aq.Len())
	}
	return err
}

// Save writes the aquarium to path.
func (g *Game) Save(path string) error {
	err := g.aq.Save(path)
	g.metrics.Persist("save", err)
	if err == nil {
		g.logger.Info("aquarium saved", "path", path, "items", g.aq.Len())
	}
	return err
}
