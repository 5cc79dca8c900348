package domain

import (
	"regexp"
	"strings"
)

var (
	taskTitlePattern     = regexp.MustCompile(`^([a-zA-Z0-9._-]+)-(\w+)-(\w+)-(expert|hard|medium)-(\d+)$`)
	// Тренер матчится жадно: при лишних сегментах доменом станет предпоследний из них.
	taskTitleAltPattern  = regexp.MustCompile(`^([a-zA-Z0-9._-]+)-(\w+)-.*-(\d{10,})$`)
	complexityByPriority = []string{"expert", "hard", "medium"}
)

// TaskTitle - разобранное имя задачи trainer-domain-interface-complexity-timestamp.
type TaskTitle struct {
	Trainer    string
	Domain     string
	Interface  string
	Complexity string
	TaskID     string
}

// ParseTaskTitle разбирает заголовок PR. false - заголовок не относится к задачам.
func ParseTaskTitle(title string) (TaskTitle, bool) {
	if m := taskTitlePattern.FindStringSubmatch(title); m != nil {
		return TaskTitle{
			Trainer:    m[1],
			Domain:     m[2],
			Interface:  m[3],
			Complexity: m[4],
			TaskID:     m[5],
		}, true
	}

	if m := taskTitleAltPattern.FindStringSubmatch(title); m != nil {
		complexity := ComplexityUnknown
		lower := strings.ToLower(title)
		for _, c := range complexityByPriority {
			if strings.Contains(lower, c) {
				complexity = c
				break
			}
		}
		return TaskTitle{
			Trainer:    m[1],
			Domain:     m[2],
			Complexity: complexity,
			TaskID:     m[3],
		}, true
	}

	return TaskTitle{}, false
}
