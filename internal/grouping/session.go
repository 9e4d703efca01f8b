package grouping

// Session - состояние текущего перетаскивания: Idle или Dragging.
type Session interface {
	isSession()
}

// Idle - ничего не перетаскивается.
type Idle struct{}

// Dragging - пользователь держит карточку команды.
type Dragging struct {
	TeamID string
}

func (Idle) isSession()     {}
func (Dragging) isSession() {}

// Assigner - единственный выход редактора во внешний мир.
// Вызов не ожидается и не повторяется: сохранение и обработка ошибок
// целиком на стороне вызывающего кода.
type Assigner interface {
	Assign(teamID string, poolName *string)
}

// AssignerFunc позволяет использовать функцию как Assigner.
type AssignerFunc func(teamID string, poolName *string)

// Assign вызывает f(teamID, poolName).
func (f AssignerFunc) Assign(teamID string, poolName *string) {
	f(teamID, poolName)
}
