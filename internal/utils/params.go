package utils

import (
	"regexp"
	"strconv"
)

var (
	idPattern    = regexp.MustCompile(`^[0-9]+$`)
	deltaPattern = regexp.MustCompile(`^[-+]?[0-9]+$`)
)

// IsValidID — только цифры. Ведущие нули допустимы, "0" тоже: существование проверяется отдельно.
func IsValidID(raw string) bool {
	return idPattern.MatchString(raw)
}

// ParseID переводит id в int64. ok=false при неверном формате или переполнении.
// Переполнение не ошибка формата: вызывающий сначала проверяет IsValidID,
// а id за пределами int64 считает несуществующим (404), а не некорректным (400).
func ParseID(raw string) (int64, bool) {
	if !IsValidID(raw) {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// IsValidVoteDelta: цифры с необязательным знаком + или -.
func IsValidVoteDelta(raw string) bool {
	return deltaPattern.MatchString(raw)
}

// ParseVoteDelta разбирает приращение голосов. Дробные числа, слова и пустая строка отвергаются.
func ParseVoteDelta(raw string) (int, bool) {
	if !IsValidVoteDelta(raw) {
		return 0, false
	}
	n, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, false
	}
	return int(n), true
}
