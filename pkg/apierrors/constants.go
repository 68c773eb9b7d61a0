package apierrors

const (
	MsgInvalidPayload      = "invalidPayload"
	MsgInvalidQuery        = "invalidQuery"
	MsgInvalidTodoID       = "invalidTodoID"
	MsgInvalidTaskID       = "invalidTaskID"
	MsgTodoNotFound        = "todoNotFound"
	MsgTaskNotFound        = "taskNotFound"
	MsgOwnerTaken          = "ownerTaken"
	MsgDatabaseUnavailable = "databaseUnavailable"

	MsgFailListTodos  = "failListTodos"
	MsgFailGetTodo    = "failGetTodo"
	MsgFailCreateTodo = "failCreateTodo"
	MsgFailUpdateTodo = "failUpdateTodo"
	MsgFailDeleteTodo = "failDeleteTodo"

	MsgFailListTasks  = "failListTasks"
	MsgFailGetTask    = "failGetTask"
	MsgFailCreateTask = "failCreateTask"
	MsgFailUpdateTask = "failUpdateTask"
	MsgFailDeleteTask = "failDeleteTask"
)
