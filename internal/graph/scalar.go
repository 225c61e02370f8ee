// Package graph
package graph

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

const dateLayout = "2006-01-02"

// DateTime 对应 schema 中的 DateTime 标量, 输出为 RFC 3339
type DateTime struct {
	time.Time
}

func (DateTime) ImplementsGraphQLType(name string) bool {
	return name == "DateTime"
}

func (t *DateTime) UnmarshalGraphQL(input interface{}) error {
	switch value := input.(type) {
	case string:
		parsed, err := ParseDateTime(value)
		if err != nil {
			return err
		}
		t.Time = parsed
		return nil
	case int32:
		t.Time = time.UnixMilli(int64(value)).UTC()
		return nil
	case int64:
		t.Time = time.UnixMilli(value).UTC()
		return nil
	case float64:
		t.Time = time.UnixMilli(int64(value)).UTC()
		return nil
	case time.Time:
		t.Time = value
		return nil
	default:
		return fmt.Errorf("wrong type for DateTime: %T", input)
	}
}

func (t DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Time.Format(time.RFC3339Nano))
}

// ParseDateTime 依次尝试 RFC 3339、纯日期格式与毫秒时间戳字符串, 纯日期按 UTC 零点解析.
// 查询中直接书写的整数字面量只支持 32 位, 毫秒时间戳需以字符串或变量传入
func ParseDateTime(value string) (time.Time, error) {
	if parsed, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return parsed, nil
	}
	if parsed, err := time.Parse(dateLayout, value); err == nil {
		return parsed, nil
	}
	if millis, err := strconv.ParseInt(value, 10, 64); err == nil {
		return time.UnixMilli(millis).UTC(), nil
	}
	return time.Time{}, fmt.Errorf("invalid DateTime %q, expect RFC 3339, %s or unix milliseconds", value, dateLayout)
}
