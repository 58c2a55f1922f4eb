package services

import "surgeonsite/models"

// DefaultSurgeries is the curated list served when the surgery collection is
// absent, empty or unreadable: three bariatric procedures followed by three
// general ones, in fixed order.
func DefaultSurgeries() []models.Surgery {
	return []models.Surgery{
		{Name: "Лапароскопическое рукавное гастрошунтирование", Type: "bariatric", Description: "Снижение веса за счёт уменьшения объёма желудка"},
		{Name: "Гастрошунтирование по Ру", Type: "bariatric", Description: "Комбинированная методика для стойкого снижения массы тела"},
		{Name: "Установка внутрижелудочного баллона", Type: "bariatric", Description: "Временная методика для коррекции веса"},
		{Name: "Холецистэктомия (удаление желчного пузыря)", Type: "general", Description: "Лапароскопическое удаление при желчнокаменной болезни"},
		{Name: "Грыжесечение (паховые, пупочные, вентральные)", Type: "general", Description: "Современные сетчатые импланты и надёжная фиксация"},
		{Name: "Аппендэктомия", Type: "general", Description: "Малоинвазивное удаление аппендикса"},
	}
}

// DefaultDoctorProfile is served when the doctorprofile collection yields
// nothing.
func DefaultDoctorProfile() models.DoctorProfile {
	return models.DoctorProfile{
		FullName:        "Сергей Александрович Волков",
		Title:           "Бариатрический и общий хирург, к.м.н.",
		Bio:             "Более 15 лет практики в бариатрической и общей хирургии, свыше 2000 лапароскопических операций",
		ExperienceYears: 15,
		ClinicName:      "Клиника современной хирургии",
		ClinicAddress:   "Москва, ул. Лечебная, 12",
	}
}
