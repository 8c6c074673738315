package glboot

// Process exit codes returned by Run.
const (
	ExitOK      = 0
	ExitFailure = -1
)

// Run opens a window described by cfg, draws the triangle until the window
// is asked to close and releases everything it created.  Run returns the
// process exit code.  It must be called from the main OS thread.
func Run(p Platform, cfg Config) int {
	logger := cfg.logger()

	if err := p.Init(); err != nil {
		logger.Printf("Failed to initialize GLFW: %v", err)
		return ExitFailure
	}
	defer p.Terminate()

	win, err := p.CreateWindow(cfg.Window)
	if err != nil || win == nil {
		logger.Printf("Failed to create GLFW window: %v", err)
		return ExitFailure
	}
	defer win.Destroy()

	win.MakeContextCurrent()
	dev, err := p.Device()
	if err != nil {
		logger.Printf("Failed to load OpenGL: %v", err)
		return ExitFailure
	}
	logger.Printf("OpenGL %s (%s)", dev.GetString(GLVersion), dev.GetString(GLRenderer))

	r, err := NewRenderer(dev, cfg)
	if err != nil {
		logger.Printf("error creating GL program: %v", err)
		return ExitFailure
	}
	defer r.Release()

	r.Clear()
	win.SwapBuffers()

	for !win.ShouldClose() {
		r.Draw()
		win.SwapBuffers()
		p.PollEvents()
	}
	return ExitOK
}
