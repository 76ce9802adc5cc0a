package service

import (
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/souravmahato2004/Attendance-Management-System-sub000/internal/model"
	"github.com/souravmahato2004/Attendance-Management-System-sub000/internal/repository"
	pkgerrors "github.com/souravmahato2004/Attendance-Management-System-sub000/pkg/errors"
)

// ── 测试夹具 ──
//
// 课程 (program=1, dept=1, sem=1)：科目 10=Math、11=Physics，学生 100、101

var cohort = model.CourseKey{ProgramID: 1, DepartmentID: 1, Semester: 1}

type testEnv struct {
	store *memStore
	repo  *repository.Repository
}

func newTestEnv() *testEnv {
	s := newMemStore()
	return &testEnv{store: s, repo: newMockRepository(s)}
}

func newSeededEnv() *testEnv {
	env := newTestEnv()
	env.seedCourse(1, cohort)
	env.seedSubject(10, 1, "Math")
	env.seedSubject(11, 1, "Physics")
	env.seedStudent(100, "Asha", "R-01", cohort)
	env.seedStudent(101, "Bilal", "R-02", cohort)
	return env
}

func (e *testEnv) seedCourse(id int64, key model.CourseKey) {
	e.store.courses[id] = model.Course{ID: id, ProgramID: key.ProgramID, DepartmentID: key.DepartmentID, Semester: key.Semester}
}

func (e *testEnv) seedSubject(id, courseID int64, name string) {
	e.store.subjects[id] = model.Subject{ID: id, Name: name, CourseID: courseID}
}

func (e *testEnv) seedStudent(id int64, name, roll string, key model.CourseKey) {
	e.store.students[id] = model.Student{
		ID:           id,
		Name:         name,
		Email:        strings.ToLower(roll) + "@school.test",
		RollNumber:   roll,
		ProgramID:    key.ProgramID,
		DepartmentID: key.DepartmentID,
		Semester:     key.Semester,
	}
}

func (e *testEnv) seedTeacher(id, email string) {
	e.store.teachers[id] = model.Teacher{ID: id, Name: "Teacher " + id, Email: email, DepartmentID: 1}
}

func (e *testEnv) seedAssignment(id int64, teacherID string, subjectID int64) {
	e.store.assignments[id] = model.TeacherSubject{ID: id, TeacherID: teacherID, SubjectID: subjectID}
}

func (e *testEnv) seedMark(id, studentID, subjectID int64, date time.Time, status model.AttendanceStatus) {
	e.store.attendance[id] = model.Attendance{
		ID: id, StudentID: studentID, SubjectID: subjectID, AttendanceDate: date, Status: status,
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func intPtr(v int) *int { return &v }

var nopLogger = zap.NewNop()

// assertKind 断言错误分类
func assertKind(t *testing.T, err error, want pkgerrors.Kind) {
	t.Helper()
	if err == nil {
		t.Fatalf("期望 %s 错误，实际为 nil", want)
	}
	if got := pkgerrors.KindOf(err); got != want {
		t.Fatalf("期望 %s 错误，实际 %s: %v", want, got, err)
	}
}

// assertIs 断言业务哨兵错误
func assertIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("期望 %v，实际: %v", target, err)
	}
}

func cohortKey(programID, departmentID int64, semester int) model.CourseKey {
	return model.CourseKey{ProgramID: programID, DepartmentID: departmentID, Semester: semester}
}
