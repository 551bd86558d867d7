package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/talentumplus/talentum/internal/client/models"
)

// Courses lists the training catalog. Available to any authenticated user.
func (a *App) Courses(ctx context.Context) error {
	if !a.requireRole("") {
		return nil
	}

	courses, err := a.api.ListCourses(ctx, "", "")
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	if len(courses) == 0 {
		printlnFn("No courses available")
		return nil
	}
	for _, c := range courses {
		printlnFn(fmt.Sprintf("%s  %s [%s/%s] %dh", c.Codigo, c.Nombre, c.Categoria, c.Nivel, c.DuracionHoras))
	}
	return nil
}

// Enroll signs the candidate up for a course by code.
func (a *App) Enroll(ctx context.Context) error {
	if !a.requireRole(models.RoleCandidato) {
		return nil
	}

	codigo, err := getSimpleText(a.reader, "Enter course code", os.Stdout)
	if err != nil {
		return err
	}

	enrollment, err := a.api.Enroll(ctx, codigo)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Enrolled in %s (enrollment %s)", enrollment.CursoCodigo, enrollment.ID))
	return nil
}

// MyCourses lists the candidate's enrollments with progress and exam state.
func (a *App) MyCourses(ctx context.Context) error {
	if !a.requireRole(models.RoleCandidato) {
		return nil
	}

	enrollments, err := a.api.MyEnrollments(ctx)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	if len(enrollments) == 0 {
		printlnFn("No enrollments yet")
		return nil
	}
	for _, e := range enrollments {
		name := e.CursoCodigo
		if e.Curso != nil {
			name = e.Curso.Nombre
		}
		status := fmt.Sprintf("%.0f%%", e.Progreso*100)
		if e.Completado {
			status = "completed"
			if e.Aprobado {
				status = fmt.Sprintf("completed, exam grade %d", e.NotaExamen)
			}
		}
		printlnFn(fmt.Sprintf("%s  %s (%s)", e.ID, name, status))
	}
	return nil
}

// Progress records how much of a course the candidate has worked through.
func (a *App) Progress(ctx context.Context) error {
	if !a.requireRole(models.RoleCandidato) {
		return nil
	}

	id, err := getSimpleText(a.reader, "Enter enrollment id", os.Stdout)
	if err != nil {
		return err
	}
	value, err := getSimpleText(a.reader, "Enter progress (0-1)", os.Stdout)
	if err != nil {
		return err
	}
	progreso, err := strconv.ParseFloat(value, 64)
	if err != nil {
		printlnFn("Progress must be a number")
		return err
	}

	enrollment, err := a.api.UpdateProgress(ctx, id, progreso)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Progress for %s is now %.0f%%", enrollment.CursoCodigo, enrollment.Progreso*100))
	return nil
}

// Exam takes the final exam for a fully progressed course.
func (a *App) Exam(ctx context.Context) error {
	if !a.requireRole(models.RoleCandidato) {
		return nil
	}

	id, err := getSimpleText(a.reader, "Enter enrollment id", os.Stdout)
	if err != nil {
		return err
	}

	enrollment, err := a.api.TakeExam(ctx, id)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	if enrollment.Aprobado {
		printlnFn(fmt.Sprintf("Passed with grade %d, course skills added to your profile", enrollment.NotaExamen))
	} else {
		printlnFn(fmt.Sprintf("Grade %d is not enough, try again after more practice", enrollment.NotaExamen))
	}
	return nil
}
