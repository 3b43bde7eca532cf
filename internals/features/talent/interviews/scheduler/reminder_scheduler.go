package scheduler

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"gorm.io/gorm"

	"staffhub_backend/internals/configs"
	consultantModel "staffhub_backend/internals/features/talent/consultants/model"
	"staffhub_backend/internals/features/talent/interviews/model"
	"staffhub_backend/internals/features/talent/interviews/service"
	"staffhub_backend/internals/helpers/mailer"
)

/* =======================================================
   REMINDER SCHEDULER
   Setiap interval: cari interview berstatus scheduled dalam
   window ke depan yang belum dikirimi reminder, kirim email,
   lalu set flag. Baris gagal hanya dicatat ke log.
======================================================= */

func StartInterviewReminderScheduler(db *gorm.DB) {
	intervalMinutes := 15
	if v := os.Getenv("INTERVIEW_REMINDER_INTERVAL_MINUTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			intervalMinutes = n
		}
	}
	windowHours := 24
	if v := os.Getenv("INTERVIEW_REMINDER_WINDOW_HOURS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			windowHours = n
		}
	}

	go func() {
		log.Printf("[REMINDER] Scheduler reminder interview aktif (interval %d menit, window %d jam)", intervalMinutes, windowHours)
		ticker := time.NewTicker(time.Duration(intervalMinutes) * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			sendDueReminders(db, time.Duration(windowHours)*time.Hour)
		}
	}()
}

func sendDueReminders(db *gorm.DB, window time.Duration) {
	now := time.Now()

	var due []model.InterviewModel
	if err := db.
		Where("interview_status = 'scheduled'").
		Where("interview_reminder_sent = false").
		Where("interview_scheduled_at BETWEEN ? AND ?", now, now.Add(window)).
		Order("interview_scheduled_at ASC").
		Limit(100).
		Find(&due).Error; err != nil {
		log.Printf("[REMINDER][ERROR] Gagal mengambil interview: %v", err)
		return
	}
	if len(due) == 0 {
		return
	}

	log.Printf("[REMINDER] %d interview butuh reminder", len(due))

	for _, iv := range due {
		var consultant consultantModel.ConsultantModel
		if err := db.First(&consultant, "consultant_id = ?", iv.InterviewConsultantID).Error; err != nil {
			log.Printf("[REMINDER][ERROR] Consultant %s tidak ditemukan: %v", iv.InterviewConsultantID, err)
			continue
		}

		sched, err := service.RenderSchedule(iv.InterviewScheduledAt, configs.AgencyTimezone, iv.InterviewCandidateTimezone)
		if err != nil {
			log.Printf("[REMINDER][ERROR] Render jadwal interview %s: %v", iv.InterviewID, err)
			continue
		}

		body := fmt.Sprintf(
			"Halo %s,\n\nIni pengingat interview kamu:\nWaktu (zona kamu): %s\nWaktu (agency): %s\nRonde: %d, Mode: %s\n",
			consultant.ConsultantFullName, sched.CandidateTime, sched.AgencyTime, iv.InterviewRound, iv.InterviewMode,
		)
		if iv.InterviewMeetingLink != nil {
			body += "Link meeting: " + *iv.InterviewMeetingLink + "\n"
		}
		body += "\nSemoga lancar!"

		if err := mailer.Send(mailer.Message{
			ToName:  consultant.ConsultantFullName,
			ToEmail: consultant.ConsultantEmail,
			Subject: "Pengingat interview " + sched.CandidateTime,
			Text:    body,
		}); err != nil {
			log.Printf("[REMINDER][ERROR] Kirim email interview %s: %v", iv.InterviewID, err)
			continue
		}

		if err := db.Model(&model.InterviewModel{}).
			Where("interview_id = ?", iv.InterviewID).
			Update("interview_reminder_sent", true).Error; err != nil {
			log.Printf("[REMINDER][ERROR] Set flag interview %s: %v", iv.InterviewID, err)
			continue
		}

		log.Printf("[REMINDER] Reminder terkirim untuk interview %s (%s)", iv.InterviewID, consultant.ConsultantEmail)
	}
}
