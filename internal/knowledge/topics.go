package knowledge

var campusTopics = []Topic{
	{
		Key:      "ict office",
		Category: "campus",
		Keywords: []string{"ict office", "it office", "ict department", "tech support office"},
		Answer:   "The ICT office is on the ground floor of the Administration Building. It is open Monday to Friday, 8:00 AM to 5:00 PM.",
	},
	{
		Key:      "student portal",
		Category: "campus",
		Keywords: []string{"student portal", "portal", "grades online", "view my grades"},
		Answer:   "You can access the student portal from the university website using your student ID and password. Grades, schedules and assessments are posted there.",
	},
	{
		Key:      "school email",
		Category: "campus",
		Keywords: []string{"school email", "student email", "institutional email", "edu email"},
		Answer:   "Institutional email accounts are created after enrollment. Request activation at the ICT office with your registration form.",
	},
	{
		Key:      "enrollment",
		Category: "campus",
		Keywords: []string{"enroll", "enrolment", "registration period", "add subject", "drop subject"},
		Answer:   "Enrollment runs two weeks before each semester. Prepare your registration form and clearance, then follow the schedule posted by the Registrar.",
	},
	{
		Key:      "registrar",
		Category: "campus",
		Keywords: []string{"registrar", "transcript", "transcript of records", "certificate of grades", "diploma"},
		Answer:   "Requests for transcripts and certificates are filed at the Registrar's Office. Processing usually takes three to five working days.",
	},
	{
		Key:      "library",
		Category: "campus",
		Keywords: []string{"library", "borrow book", "e-library"},
		Answer:   "The library is open Monday to Saturday, 7:30 AM to 6:00 PM. Bring your validated school ID to borrow books or use the e-library computers.",
	},
	{
		Key:      "tuition",
		Category: "campus",
		Keywords: []string{"tuition", "cashier", "payment", "balance", "scholarship"},
		Answer:   "Tuition payments are accepted at the Cashier's Office and through the partner banks listed on the portal. Scholarship concerns go to the Office of Student Affairs.",
	},
	{
		Key:      "learning management",
		Category: "campus",
		Keywords: []string{"lms", "google classroom", "moodle", "online class"},
		Answer:   "Online classes use the university LMS. Sign in with your institutional email; ask your instructor for the class code.",
	},
}
