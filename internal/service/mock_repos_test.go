package service

import (
	"context"
	"sort"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/souravmahato2004/Attendance-Management-System-sub000/internal/model"
	"github.com/souravmahato2004/Attendance-Management-System-sub000/internal/repository"
)

// ═══════════════════════════════════════════════════════════
// memStore，所有 mock 仓储共享的内存表
// ═══════════════════════════════════════════════════════════
//
// 唯一约束 / 外键约束按迁移脚本模拟，违反时返回与 PostgreSQL 相同的 PgError，
// 事务回滚通过快照恢复实现。

type memStore struct {
	programs    map[int64]model.Program
	departments map[int64]model.Department
	courses     map[int64]model.Course
	subjects    map[int64]model.Subject
	admins      map[int64]model.Admin
	teachers    map[string]model.Teacher
	assignments map[int64]model.TeacherSubject
	students    map[int64]model.Student
	attendance  map[int64]model.Attendance
	nextID      int64

	// calls 方法调用计数；failOn 注入错误（不随回滚恢复）
	calls  map[string]int
	failOn map[string]error
}

func newMemStore() *memStore {
	s := &memStore{
		programs:    make(map[int64]model.Program),
		departments: make(map[int64]model.Department),
		courses:     make(map[int64]model.Course),
		subjects:    make(map[int64]model.Subject),
		admins:      make(map[int64]model.Admin),
		teachers:    make(map[string]model.Teacher),
		assignments: make(map[int64]model.TeacherSubject),
		students:    make(map[int64]model.Student),
		attendance:  make(map[int64]model.Attendance),
		nextID:      1000,
		calls:       make(map[string]int),
		failOn:      make(map[string]error),
	}
	s.programs[1] = model.Program{ID: 1, Name: "B.Tech"}
	s.programs[2] = model.Program{ID: 2, Name: "MCA"}
	s.departments[1] = model.Department{ID: 1, Name: "Computer Science"}
	s.departments[2] = model.Department{ID: 2, Name: "Electronics"}
	return s
}

func (s *memStore) id() int64 {
	s.nextID++
	return s.nextID
}

// hit 记录调用并返回注入的错误
func (s *memStore) hit(name string) error {
	s.calls[name]++
	return s.failOn[name]
}

func uniqueErr(constraint string) error {
	return &pgconn.PgError{Code: "23505", ConstraintName: constraint}
}

func fkErr(constraint string) error {
	return &pgconn.PgError{Code: "23503", ConstraintName: constraint}
}

func copyMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func (s *memStore) snapshot() memStore {
	return memStore{
		programs:    copyMap(s.programs),
		departments: copyMap(s.departments),
		courses:     copyMap(s.courses),
		subjects:    copyMap(s.subjects),
		admins:      copyMap(s.admins),
		teachers:    copyMap(s.teachers),
		assignments: copyMap(s.assignments),
		students:    copyMap(s.students),
		attendance:  copyMap(s.attendance),
		nextID:      s.nextID,
	}
}

func (s *memStore) restore(snap memStore) {
	calls, failOn := s.calls, s.failOn
	*s = snap
	s.calls, s.failOn = calls, failOn
}

// courseWithRefs 模拟 Preload("Program").Preload("Department")
func (s *memStore) courseWithRefs(id int64) *model.Course {
	c, ok := s.courses[id]
	if !ok {
		return nil
	}
	if p, ok := s.programs[c.ProgramID]; ok {
		c.Program = &p
	}
	if d, ok := s.departments[c.DepartmentID]; ok {
		c.Department = &d
	}
	return &c
}

func (s *memStore) subjectWithCourse(id int64) *model.Subject {
	sub, ok := s.subjects[id]
	if !ok {
		return nil
	}
	sub.Course = s.courseWithRefs(sub.CourseID)
	return &sub
}

// ── Mock TxManager ──

type mockTxManager struct {
	store *memStore
	repo  *repository.Repository
}

func (m *mockTxManager) Transaction(_ context.Context, fn func(tx *repository.Repository) error) error {
	m.store.calls["tx"]++
	snap := m.store.snapshot()
	if err := fn(m.repo); err != nil {
		m.store.restore(snap)
		return err
	}
	return nil
}

// newMockRepository 基于 memStore 组装 Repository
func newMockRepository(s *memStore) *repository.Repository {
	repo := &repository.Repository{
		Admin:      &mockAdminRepo{s},
		Catalog:    &mockCatalogRepo{s},
		Subject:    &mockSubjectRepo{s},
		Teacher:    &mockTeacherRepo{s},
		Assignment: &mockAssignmentRepo{s},
		Student:    &mockStudentRepo{s},
		Attendance: &mockAttendanceRepo{s},
	}
	repo.TxManager = &mockTxManager{store: s, repo: repo}
	return repo
}

// ── Mock AdminRepository ──

type mockAdminRepo struct{ s *memStore }

func (m *mockAdminRepo) Create(_ context.Context, admin *model.Admin) error {
	if err := m.s.hit("admin.Create"); err != nil {
		return err
	}
	for _, a := range m.s.admins {
		if a.Email == admin.Email {
			return uniqueErr("admins_email_key")
		}
	}
	admin.ID = m.s.id()
	m.s.admins[admin.ID] = *admin
	return nil
}

func (m *mockAdminRepo) GetByEmail(_ context.Context, email string) (*model.Admin, error) {
	if err := m.s.hit("admin.GetByEmail"); err != nil {
		return nil, err
	}
	for _, a := range m.s.admins {
		if a.Email == email {
			return &a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// ── Mock CatalogRepository ──

type mockCatalogRepo struct{ s *memStore }

func (m *mockCatalogRepo) ListPrograms(_ context.Context) ([]model.Program, error) {
	if err := m.s.hit("catalog.ListPrograms"); err != nil {
		return nil, err
	}
	out := make([]model.Program, 0, len(m.s.programs))
	for _, p := range m.s.programs {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *mockCatalogRepo) ListDepartments(_ context.Context) ([]model.Department, error) {
	if err := m.s.hit("catalog.ListDepartments"); err != nil {
		return nil, err
	}
	out := make([]model.Department, 0, len(m.s.departments))
	for _, d := range m.s.departments {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *mockCatalogRepo) GetProgramByName(_ context.Context, name string) (*model.Program, error) {
	for _, p := range m.s.programs {
		if p.Name == name {
			return &p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCatalogRepo) GetDepartmentByName(_ context.Context, name string) (*model.Department, error) {
	for _, d := range m.s.departments {
		if d.Name == name {
			return &d, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCatalogRepo) GetCourse(_ context.Context, key model.CourseKey) (*model.Course, error) {
	if err := m.s.hit("catalog.GetCourse"); err != nil {
		return nil, err
	}
	for id, c := range m.s.courses {
		if c.ProgramID == key.ProgramID && c.DepartmentID == key.DepartmentID && c.Semester == key.Semester {
			return m.s.courseWithRefs(id), nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCatalogRepo) GetCourseByID(_ context.Context, id int64) (*model.Course, error) {
	if c := m.s.courseWithRefs(id); c != nil {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCatalogRepo) FirstOrCreateCourse(ctx context.Context, key model.CourseKey) (*model.Course, error) {
	if err := m.s.hit("catalog.FirstOrCreateCourse"); err != nil {
		return nil, err
	}
	if c, err := m.GetCourse(ctx, key); err == nil {
		return c, nil
	}
	if _, ok := m.s.programs[key.ProgramID]; !ok {
		return nil, fkErr("courses_program_id_fkey")
	}
	if _, ok := m.s.departments[key.DepartmentID]; !ok {
		return nil, fkErr("courses_department_id_fkey")
	}
	id := m.s.id()
	m.s.courses[id] = model.Course{ID: id, ProgramID: key.ProgramID, DepartmentID: key.DepartmentID, Semester: key.Semester}
	return m.s.courseWithRefs(id), nil
}

// ── Mock SubjectRepository ──

type mockSubjectRepo struct{ s *memStore }

func (m *mockSubjectRepo) Create(_ context.Context, subject *model.Subject) error {
	if err := m.s.hit("subject.Create"); err != nil {
		return err
	}
	if _, ok := m.s.courses[subject.CourseID]; !ok {
		return fkErr("subjects_course_id_fkey")
	}
	for _, sub := range m.s.subjects {
		if sub.CourseID == subject.CourseID && sub.Name == subject.Name {
			return uniqueErr("subjects_course_name_key")
		}
	}
	subject.ID = m.s.id()
	stored := *subject
	stored.Course = nil
	m.s.subjects[subject.ID] = stored
	return nil
}

func (m *mockSubjectRepo) GetByID(_ context.Context, id int64) (*model.Subject, error) {
	if err := m.s.hit("subject.GetByID"); err != nil {
		return nil, err
	}
	if sub := m.s.subjectWithCourse(id); sub != nil {
		return sub, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSubjectRepo) List(_ context.Context, f repository.SubjectFilter) ([]model.Subject, error) {
	out := make([]model.Subject, 0)
	for id := range m.s.subjects {
		sub := m.s.subjectWithCourse(id)
		c := sub.Course
		if f.ProgramID > 0 && c.ProgramID != f.ProgramID ||
			f.DepartmentID > 0 && c.DepartmentID != f.DepartmentID ||
			f.Semester > 0 && c.Semester != f.Semester {
			continue
		}
		out = append(out, *sub)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *mockSubjectRepo) ListByCourse(_ context.Context, courseID int64) ([]model.Subject, error) {
	if err := m.s.hit("subject.ListByCourse"); err != nil {
		return nil, err
	}
	out := make([]model.Subject, 0)
	for _, sub := range m.s.subjects {
		if sub.CourseID == courseID {
			out = append(out, sub)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *mockSubjectRepo) ListByIDs(_ context.Context, ids []int64) ([]model.Subject, error) {
	out := make([]model.Subject, 0, len(ids))
	for _, id := range ids {
		if sub := m.s.subjectWithCourse(id); sub != nil {
			out = append(out, *sub)
		}
	}
	return out, nil
}

func (m *mockSubjectRepo) Delete(_ context.Context, id int64) error {
	if err := m.s.hit("subject.Delete"); err != nil {
		return err
	}
	if _, ok := m.s.subjects[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	for _, a := range m.s.assignments {
		if a.SubjectID == id {
			return fkErr("teacher_subjects_subject_id_fkey")
		}
	}
	for _, r := range m.s.attendance {
		if r.SubjectID == id {
			return fkErr("attendance_subject_id_fkey")
		}
	}
	delete(m.s.subjects, id)
	return nil
}

// ── Mock TeacherRepository ──

type mockTeacherRepo struct{ s *memStore }

func (m *mockTeacherRepo) withRelations(t model.Teacher) *model.Teacher {
	if d, ok := m.s.departments[t.DepartmentID]; ok {
		t.Department = &d
	}
	t.Assignments = m.s.assignmentsOf(t.ID)
	return &t
}

func (s *memStore) assignmentsOf(teacherID string) []model.TeacherSubject {
	out := make([]model.TeacherSubject, 0)
	for _, a := range s.assignments {
		if a.TeacherID == teacherID {
			a.Subject = s.subjectWithCourse(a.SubjectID)
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (m *mockTeacherRepo) Create(_ context.Context, teacher *model.Teacher) error {
	if err := m.s.hit("teacher.Create"); err != nil {
		return err
	}
	if _, ok := m.s.teachers[teacher.ID]; ok {
		return uniqueErr("teachers_pkey")
	}
	for _, t := range m.s.teachers {
		if t.Email == teacher.Email {
			return uniqueErr("teachers_email_key")
		}
	}
	if _, ok := m.s.departments[teacher.DepartmentID]; !ok {
		return fkErr("teachers_department_id_fkey")
	}
	m.s.teachers[teacher.ID] = *teacher
	return nil
}

func (m *mockTeacherRepo) GetByID(_ context.Context, id string) (*model.Teacher, error) {
	if err := m.s.hit("teacher.GetByID"); err != nil {
		return nil, err
	}
	if t, ok := m.s.teachers[id]; ok {
		return m.withRelations(t), nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTeacherRepo) GetByEmail(_ context.Context, email string) (*model.Teacher, error) {
	for _, t := range m.s.teachers {
		if t.Email == email {
			return m.withRelations(t), nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTeacherRepo) List(_ context.Context) ([]model.Teacher, error) {
	out := make([]model.Teacher, 0, len(m.s.teachers))
	for _, t := range m.s.teachers {
		out = append(out, *m.withRelations(t))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *mockTeacherRepo) UpdateProfile(_ context.Context, teacher *model.Teacher) error {
	if err := m.s.hit("teacher.UpdateProfile"); err != nil {
		return err
	}
	existing, ok := m.s.teachers[teacher.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for id, t := range m.s.teachers {
		if id != teacher.ID && t.Email == teacher.Email {
			return uniqueErr("teachers_email_key")
		}
	}
	if _, ok := m.s.departments[teacher.DepartmentID]; !ok {
		return fkErr("teachers_department_id_fkey")
	}
	existing.Name = teacher.Name
	existing.Email = teacher.Email
	existing.DepartmentID = teacher.DepartmentID
	m.s.teachers[teacher.ID] = existing
	return nil
}

func (m *mockTeacherRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.s.teachers[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.s.teachers, id)
	for aid, a := range m.s.assignments {
		if a.TeacherID == id {
			delete(m.s.assignments, aid)
		}
	}
	return nil
}

func (m *mockTeacherRepo) Count(_ context.Context) (int64, error) {
	if err := m.s.hit("teacher.Count"); err != nil {
		return 0, err
	}
	return int64(len(m.s.teachers)), nil
}

// ── Mock AssignmentRepository ──

type mockAssignmentRepo struct{ s *memStore }

func (m *mockAssignmentRepo) Create(_ context.Context, a *model.TeacherSubject) error {
	if err := m.s.hit("assignment.Create"); err != nil {
		return err
	}
	if _, ok := m.s.teachers[a.TeacherID]; !ok {
		return fkErr("teacher_subjects_teacher_id_fkey")
	}
	if _, ok := m.s.subjects[a.SubjectID]; !ok {
		return fkErr("teacher_subjects_subject_id_fkey")
	}
	for _, existing := range m.s.assignments {
		if existing.TeacherID == a.TeacherID && existing.SubjectID == a.SubjectID {
			return uniqueErr("teacher_subjects_teacher_subject_key")
		}
	}
	a.ID = m.s.id()
	m.s.assignments[a.ID] = *a
	return nil
}

func (m *mockAssignmentRepo) GetByID(_ context.Context, id int64) (*model.TeacherSubject, error) {
	if a, ok := m.s.assignments[id]; ok {
		return &a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAssignmentRepo) ListByTeacher(_ context.Context, teacherID string) ([]model.TeacherSubject, error) {
	return m.s.assignmentsOf(teacherID), nil
}

func (m *mockAssignmentRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.s.assignments[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.s.assignments, id)
	return nil
}

func (m *mockAssignmentRepo) DeleteByTeacher(_ context.Context, teacherID string) error {
	if err := m.s.hit("assignment.DeleteByTeacher"); err != nil {
		return err
	}
	for id, a := range m.s.assignments {
		if a.TeacherID == teacherID {
			delete(m.s.assignments, id)
		}
	}
	return nil
}

// BatchCreate 逐条插入，失败时已插入的行保留（由事务回滚负责撤销）
func (m *mockAssignmentRepo) BatchCreate(ctx context.Context, teacherID string, subjectIDs []int64) error {
	if err := m.s.hit("assignment.BatchCreate"); err != nil {
		return err
	}
	for _, sid := range subjectIDs {
		if err := m.Create(ctx, &model.TeacherSubject{TeacherID: teacherID, SubjectID: sid}); err != nil {
			return err
		}
	}
	return nil
}

// ── Mock StudentRepository ──

type mockStudentRepo struct{ s *memStore }

func (m *mockStudentRepo) withRefs(st model.Student) *model.Student {
	if p, ok := m.s.programs[st.ProgramID]; ok {
		st.Program = &p
	}
	if d, ok := m.s.departments[st.DepartmentID]; ok {
		st.Department = &d
	}
	return &st
}

func (m *mockStudentRepo) checkUnique(st *model.Student) error {
	for id, other := range m.s.students {
		if id == st.ID {
			continue
		}
		if other.Email == st.Email {
			return uniqueErr("students_email_key")
		}
		if other.RollNumber == st.RollNumber {
			return uniqueErr("students_roll_number_key")
		}
	}
	if _, ok := m.s.programs[st.ProgramID]; !ok {
		return fkErr("students_program_id_fkey")
	}
	if _, ok := m.s.departments[st.DepartmentID]; !ok {
		return fkErr("students_department_id_fkey")
	}
	return nil
}

func (m *mockStudentRepo) Create(_ context.Context, st *model.Student) error {
	if err := m.s.hit("student.Create"); err != nil {
		return err
	}
	if err := m.checkUnique(st); err != nil {
		return err
	}
	st.ID = m.s.id()
	m.s.students[st.ID] = *st
	return nil
}

func (m *mockStudentRepo) GetByID(_ context.Context, id int64) (*model.Student, error) {
	if st, ok := m.s.students[id]; ok {
		return m.withRefs(st), nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStudentRepo) GetByEmail(_ context.Context, email string) (*model.Student, error) {
	for _, st := range m.s.students {
		if st.Email == email {
			return m.withRefs(st), nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStudentRepo) List(_ context.Context, f repository.StudentFilter) ([]model.Student, error) {
	out := make([]model.Student, 0)
	for _, st := range m.s.students {
		if f.ProgramID > 0 && st.ProgramID != f.ProgramID ||
			f.DepartmentID > 0 && st.DepartmentID != f.DepartmentID ||
			f.Semester > 0 && st.Semester != f.Semester {
			continue
		}
		out = append(out, *m.withRefs(st))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RollNumber < out[j].RollNumber })
	return out, nil
}

func (m *mockStudentRepo) ListByCourse(_ context.Context, key model.CourseKey) ([]model.Student, error) {
	if err := m.s.hit("student.ListByCourse"); err != nil {
		return nil, err
	}
	out := make([]model.Student, 0)
	for _, st := range m.s.students {
		if st.CourseKey() == key {
			out = append(out, st)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RollNumber < out[j].RollNumber })
	return out, nil
}

func (m *mockStudentRepo) Update(_ context.Context, st *model.Student) error {
	existing, ok := m.s.students[st.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if err := m.checkUnique(st); err != nil {
		return err
	}
	st.PasswordHash = existing.PasswordHash
	m.s.students[st.ID] = *st
	return nil
}

func (m *mockStudentRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.s.students[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.s.students, id)
	for rid, r := range m.s.attendance {
		if r.StudentID == id {
			delete(m.s.attendance, rid)
		}
	}
	return nil
}

func (m *mockStudentRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.s.students)), nil
}

// ── Mock AttendanceRepository ──

type mockAttendanceRepo struct{ s *memStore }

func sameDay(a, b time.Time) bool {
	return a.Format("2006-01-02") == b.Format("2006-01-02")
}

func (m *mockAttendanceRepo) Upsert(_ context.Context, records []model.Attendance) error {
	if err := m.s.hit("attendance.Upsert"); err != nil {
		return err
	}
	for _, rec := range records {
		if _, ok := m.s.students[rec.StudentID]; !ok {
			return fkErr("attendance_student_id_fkey")
		}
		if _, ok := m.s.subjects[rec.SubjectID]; !ok {
			return fkErr("attendance_subject_id_fkey")
		}
		updated := false
		for id, existing := range m.s.attendance {
			if existing.StudentID == rec.StudentID && existing.SubjectID == rec.SubjectID &&
				sameDay(existing.AttendanceDate, rec.AttendanceDate) {
				existing.Status = rec.Status
				m.s.attendance[id] = existing
				updated = true
				break
			}
		}
		if !updated {
			rec.ID = m.s.id()
			m.s.attendance[rec.ID] = rec
		}
	}
	return nil
}

func (m *mockAttendanceRepo) ListBySubjectAndDate(_ context.Context, subjectID int64, date time.Time) ([]model.Attendance, error) {
	out := make([]model.Attendance, 0)
	for _, r := range m.s.attendance {
		if r.SubjectID == subjectID && sameDay(r.AttendanceDate, date) {
			out = append(out, r)
		}
	}
	return out, nil
}

func containsID(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func (m *mockAttendanceRepo) ListMarks(_ context.Context, f repository.MarkFilter) ([]model.Attendance, error) {
	if err := m.s.hit("attendance.ListMarks"); err != nil {
		return nil, err
	}
	from, to := f.From.Format("2006-01-02"), f.To.Format("2006-01-02")
	out := make([]model.Attendance, 0)
	for _, r := range m.s.attendance {
		d := r.AttendanceDate.Format("2006-01-02")
		if len(f.SubjectIDs) > 0 && !containsID(f.SubjectIDs, r.SubjectID) ||
			len(f.StudentIDs) > 0 && !containsID(f.StudentIDs, r.StudentID) ||
			!f.From.IsZero() && d < from ||
			!f.To.IsZero() && d > to {
			continue
		}
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].AttendanceDate.Equal(out[j].AttendanceDate) {
			return out[i].AttendanceDate.Before(out[j].AttendanceDate)
		}
		return out[i].StudentID < out[j].StudentID
	})
	return out, nil
}

func (m *mockAttendanceRepo) CountByStatusOnDate(_ context.Context, date time.Time) (map[model.AttendanceStatus]int64, error) {
	out := make(map[model.AttendanceStatus]int64)
	for _, r := range m.s.attendance {
		if sameDay(r.AttendanceDate, date) {
			out[r.Status]++
		}
	}
	return out, nil
}

func (m *mockAttendanceRepo) CountAttendedStudentsOnDate(_ context.Context, date time.Time) (int64, error) {
	seen := make(map[int64]struct{})
	for _, r := range m.s.attendance {
		if sameDay(r.AttendanceDate, date) && r.Status.Attended() {
			seen[r.StudentID] = struct{}{}
		}
	}
	return int64(len(seen)), nil
}
