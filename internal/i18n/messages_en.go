package i18n

var en = map[string]string{
	// Navigation
	"nav.home":             "Home",
	"nav.compose":          "Report Issue",
	"nav.profile":          "Profile",
	"nav.myReports":        "My Reports",
	"nav.municipalityInfo": "Municipality Info",
	"nav.dashboard":        "Dashboard",
	"nav.logout":           "Logout",

	"app.title":        "Prathmikta",
	"app.subtitle":     "Connecting Citizens with Municipal Corporations",
	"app.digitalIndia": "Digital India Initiative",
	"lang.switch":      "हिन्दी",

	"home.title":          "Civic Issues Feed",
	"home.subtitle":       "Community Reports & Updates",
	"home.upvote":         "Upvote",
	"home.comment":        "Comment",
	"home.share":          "Share",
	"home.status.pending": "Pending",
	"home.status.working": "In Progress",
	"home.status.solved":  "Resolved",

	"compose.title":            "Report Civic Issue",
	"compose.subtitle":         "Help improve your community",
	"compose.titleField":       "Issue Title",
	"compose.descField":        "Detailed Description",
	"compose.titlePlaceholder": "Enter a clear title for the issue",
	"compose.descPlaceholder":  "Describe the issue in detail...",
	"compose.addImages":        "Add Images",
	"compose.submit":           "Submit Report",
	"compose.submitting":       "Submitting...",

	"profile.title":    "User Profile",
	"profile.info":     "Profile Information",
	"profile.settings": "Settings",
	"profile.about":    "About Prathmikta",

	"myReports.title":         "My Reports",
	"myReports.subtitle":      "Track your submitted issues",
	"myReports.edit":          "Edit",
	"myReports.delete":        "Delete",
	"myReports.lastUpdated":   "Last Updated",
	"myReports.reupload":      "Re-upload",
	"myReports.confirmDelete": "Delete this report permanently?",

	"municipal.title":          "Municipal Dashboard",
	"municipal.subtitle":       "Manage Civic Issues",
	"municipal.statistics":     "Statistics",
	"municipal.totalIssues":    "Total Issues",
	"municipal.pendingIssues":  "Pending",
	"municipal.inProgress":     "In Progress",
	"municipal.resolvedIssues": "Resolved",
	"municipal.updateStatus":   "Update Status",
	"municipal.markPending":    "Mark as Pending",
	"municipal.markWorking":    "Mark as Working",
	"municipal.markSolved":     "Mark as Solved",

	"common.loading":    "Loading...",
	"common.save":       "Save",
	"common.cancel":     "Cancel",
	"common.back":       "Back",
	"common.next":       "Next",
	"common.submit":     "Submit",
	"common.close":      "Close",
	"common.government": "Government of India",

	// Login
	"login.citizen":         "Citizen",
	"login.officer":         "Municipal Officer",
	"login.credentialField": "Aadhaar Number",
	"login.codeField":       "OTP",
	"login.sending":         "Sending OTP...",
	"login.verifying":       "Verifying...",
	"login.citizenUser":     "Citizen User",
	"login.officerUser":     "Officer User",

	// Validation
	"error.titleRequired":      "Issue Title is required",
	"error.contentRequired":    "Detailed Description is required",
	"error.invalidCredential":  "Please enter a valid 12-digit Aadhaar number",
	"error.invalidCode":        "Please enter a valid 6-digit OTP",
	"error.commentRequired":    "Comment cannot be empty",
	"error.selectMunicipality": "Please select a municipality",

	// Municipality selection and info
	"municipality.selectTitle":    "Choose your Municipal Corporation",
	"municipality.search":         "Search city",
	"municipality.selectState":    "Select state",
	"municipality.population":     "Population",
	"municipality.area":           "Area",
	"municipality.confirm":        "Continue",
	"info.service.water":          "Water Supply",
	"info.service.water.desc":     "24x7 water supply and quality control",
	"info.service.light":          "Electricity & Street Lights",
	"info.service.light.desc":     "Street light maintenance and electrical services",
	"info.service.waste":          "Waste Management",
	"info.service.waste.desc":     "Regular waste collection and sanitation services",
	"info.service.roads":          "Roads & Traffic",
	"info.service.roads.desc":     "Road maintenance and traffic management",
	"info.service.health":         "Health Services",
	"info.service.health.desc":    "Community health centers and vaccination",
	"info.service.education":      "Education",
	"info.service.education.desc": "Municipal schools and education programs",
	"info.dept.admin":             "Administration Department",
	"info.dept.engineering":       "Engineering Department",
	"info.dept.revenue":           "Revenue Department",
	"info.dept.health":            "Health Department",
}
