package menu

// Builder receives the materialization walk of an AbstractMenu. Concrete
// implementations produce widget trees; tests use a recording builder.
//
// Calls arrive as a balanced sequence: BeginMenu opens a nested menu whose
// children follow until the matching EndMenu.
type Builder interface {
	BeginMenu(name string)
	EndMenu()
	Action(key string)
	Separator()
}
