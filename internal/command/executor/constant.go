package executor

// Log prefixes
const (
	LogPrefixExecute  = "internal.command.executor.Execute"
	LogPrefixMultiple = "internal.command.executor.executeMultiple"
)

// Currency formatting
const (
	CurrencySymbol = "¥"
)

// User-facing messages
const (
	MsgAmountPrompt      = "请问金额是多少？"
	MsgTitlePrompt       = "请告诉我待办事项的内容"
	MsgContentPrompt     = "今天想记点什么？"
	MsgGoalNamePrompt    = "请告诉我目标的名称"
	MsgDepositPrompt     = "请问要存入多少钱？"
	MsgWithdrawPrompt    = "请问要取出多少钱？"
	MsgCategoryPrompt    = "请问要查询哪个分类的支出？"
	MsgNoHabits          = "还没有创建任何习惯，先去添加一个吧"
	MsgHabitNotFound     = "没有找到这个习惯，你是想打卡：%s 吗？"
	MsgInDevelopment     = "该功能开发中，敬请期待"
	MsgNoGoals           = "还没有进行中的目标"
	MsgAllChildrenFailed = "一条命令都没有执行成功"
	MsgExecutionFailed   = "执行失败，请稍后再试"
)

// Limits
const (
	// MaxHabitCandidates caps how many habit names a NeedMoreInfo prompt lists.
	MaxHabitCandidates = 5
	// DefaultEventMinutes is the calendar event length for todos without one.
	DefaultEventMinutes = 60
)
