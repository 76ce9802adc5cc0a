package report

import (
	"sort"
	"time"

	"github.com/souravmahato2004/Attendance-Management-System-sub000/internal/model"
)

// Mark 一条原始考勤记录
type Mark struct {
	StudentID int64
	SubjectID int64
	Date      time.Time
	Status    model.AttendanceStatus
}

// Day 记录所在的自然日（UTC 零点），用作分组键
func (m Mark) Day() time.Time {
	return DayOf(m.Date)
}

// DayOf 把时间归一为当天 UTC 零点
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Bucket 一个分组内的累计结果
type Bucket struct {
	Tally
	subjects map[int64]struct{}
	days     map[time.Time]struct{}
}

func newBucket() *Bucket {
	return &Bucket{
		subjects: make(map[int64]struct{}),
		days:     make(map[time.Time]struct{}),
	}
}

func (b *Bucket) add(m Mark) {
	b.Add(m.Status, 1)
	b.subjects[m.SubjectID] = struct{}{}
	b.days[m.Day()] = struct{}{}
}

// SubjectIDs 分组内出现过的科目（升序）
func (b *Bucket) SubjectIDs() []int64 {
	ids := make([]int64, 0, len(b.subjects))
	for id := range b.subjects {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// DayCount 分组内有记录的自然日数
func (b *Bucket) DayCount() int {
	return len(b.days)
}

// Reduce 按 key 对记录分组累计
// key 返回 false 表示丢弃该记录；状态非法的记录同样丢弃
func Reduce[K comparable](marks []Mark, key func(Mark) (K, bool)) map[K]*Bucket {
	buckets := make(map[K]*Bucket)
	for _, m := range marks {
		if !m.Status.Valid() {
			continue
		}
		k, ok := key(m)
		if !ok {
			continue
		}
		b, exists := buckets[k]
		if !exists {
			b = newBucket()
			buckets[k] = b
		}
		b.add(m)
	}
	return buckets
}

// flat 不分组：全部记录归入同一个桶
type flat struct{}

// Total 汇总全部记录（不分组）
func Total(marks []Mark, keep func(Mark) bool) *Bucket {
	buckets := Reduce(marks, func(m Mark) (flat, bool) {
		return flat{}, keep == nil || keep(m)
	})
	if b, ok := buckets[flat{}]; ok {
		return b
	}
	return newBucket()
}
