package apierrors

const (
	MsgFailListTask         = "errorListTask"
	MsgInvalidTaskID        = "invalidTaskID"
	MsgInvalidTaskPayload   = "invalidTaskPayload"
	MsgTaskNotFound         = "taskNotFound"
	MsgFailCreateTask       = "failCreateTask"
	MsgFailToggleTask       = "failToggleTask"
	MsgFailDeleteTask       = "failDeleteTask"
	MsgInvalidOrder         = "invalidOrder"
	MsgFailReorderTasks     = "failReorderTasks"
	MsgFailGetReport        = "failGetReport"
	MsgInvalidReportPayload = "invalidReportPayload"
	MsgFailSaveReport       = "failSaveReport"
	MsgInvalidLimit         = "invalidLimit"
	MsgFailListHistory      = "failListHistory"
	MsgFailKPI              = "failKPI"
	MsgDayAlreadyArchived   = "dayAlreadyArchived"
	MsgFailResetDay         = "failResetDay"
	MsgFailExport           = "failExport"
)
