package i18n

var hi = map[string]string{
	"nav.home":             "होम",
	"nav.compose":          "समस्या रिपोर्ट करें",
	"nav.profile":          "प्रोफाइल",
	"nav.myReports":        "मेरी रिपोर्ट",
	"nav.municipalityInfo": "नगर निगम जानकारी",
	"nav.dashboard":        "डैशबोर्ड",
	"nav.logout":           "लॉगआउट",

	"app.title":        "प्राथमिकता",
	"app.subtitle":     "नागरिकों को नगर निगम से जोड़ना",
	"app.digitalIndia": "डिजिटल इंडिया पहल",
	"lang.switch":      "English",

	"home.title":          "नागरिक समस्या फीड",
	"home.subtitle":       "समुदायिक रिपोर्ट और अपडेट",
	"home.upvote":         "समर्थन",
	"home.comment":        "टिप्पणी",
	"home.share":          "साझा करें",
	"home.status.pending": "लंबित",
	"home.status.working": "प्रगति में",
	"home.status.solved":  "हल हो गया",

	"compose.title":            "नागरिक समस्या रिपोर्ट करें",
	"compose.subtitle":         "अपने समुदाय को बेहतर बनाने में मदद करें",
	"compose.titleField":       "समस्या शीर्षक",
	"compose.descField":        "विस्तृत विवरण",
	"compose.titlePlaceholder": "समस्या के लिए स्पष्ट शीर्षक दर्ज करें",
	"compose.descPlaceholder":  "समस्या का विस्तार से वर्णन करें...",
	"compose.addImages":        "तस्वीरें जोड़ें",
	"compose.submit":           "रिपोर्ट सबमिट करें",
	"compose.submitting":       "सबमिट कर रहे हैं...",

	"profile.title":    "उपयोगकर्ता प्रोफाइल",
	"profile.info":     "प्रोफाइल जानकारी",
	"profile.settings": "सेटिंग्स",
	"profile.about":    "प्राथमिकता के बारे में",

	"myReports.title":         "मेरी रिपोर्ट",
	"myReports.subtitle":      "अपनी सबमिट की गई समस्याओं को ट्रैक करें",
	"myReports.edit":          "संपादित करें",
	"myReports.delete":        "हटाएं",
	"myReports.lastUpdated":   "अंतिम अपडेट",
	"myReports.reupload":      "पुनः अपलोड करें",
	"myReports.confirmDelete": "क्या आप इस रिपोर्ट को स्थायी रूप से हटाना चाहते हैं?",

	"municipal.title":          "नगरपालिका डैशबोर्ड",
	"municipal.subtitle":       "नागरिक समस्याओं का प्रबंधन",
	"municipal.statistics":     "आंकड़े",
	"municipal.totalIssues":    "कुल समस्याएं",
	"municipal.pendingIssues":  "लंबित",
	"municipal.inProgress":     "प्रगति में",
	"municipal.resolvedIssues": "हल हो गया",
	"municipal.updateStatus":   "स्थिति अपडेट करें",
	"municipal.markPending":    "लंबित के रूप में चिह्नित करें",
	"municipal.markWorking":    "कार्यरत के रूप में चिह्नित करें",
	"municipal.markSolved":     "हल के रूप में चिह्नित करें",

	"common.loading":    "लोड हो रहा है...",
	"common.save":       "सेव करें",
	"common.cancel":     "रद्द करें",
	"common.back":       "वापस",
	"common.next":       "अगला",
	"common.submit":     "सबमिट करें",
	"common.close":      "बंद करें",
	"common.government": "भारत सरकार",

	"login.citizen":         "नागरिक",
	"login.officer":         "नगर निगम अधिकारी",
	"login.credentialField": "आधार नंबर",
	"login.codeField":       "ओटीपी",
	"login.sending":         "ओटीपी भेजा जा रहा है...",
	"login.verifying":       "सत्यापित कर रहे हैं...",
	"login.citizenUser":     "नागरिक उपयोगकर्ता",
	"login.officerUser":     "अधिकारी उपयोगकर्ता",

	"error.titleRequired":      "समस्या शीर्षक आवश्यक है",
	"error.contentRequired":    "विस्तृत विवरण आवश्यक है",
	"error.invalidCredential":  "कृपया मान्य 12 अंकों का आधार नंबर दर्ज करें",
	"error.invalidCode":        "कृपया मान्य 6 अंकों का ओटीपी दर्ज करें",
	"error.commentRequired":    "टिप्पणी खाली नहीं हो सकती",
	"error.selectMunicipality": "कृपया नगर निगम चुनें",

	"municipality.selectTitle":    "अपनी नगर निगम चुनें",
	"municipality.search":         "शहर खोजें",
	"municipality.selectState":    "राज्य चुनें",
	"municipality.population":     "जनसंख्या",
	"municipality.area":           "क्षेत्रफल",
	"municipality.confirm":        "आगे बढ़ें",
	"info.service.water":          "जल आपूर्ति",
	"info.service.water.desc":     "24x7 पानी की आपूर्ति और गुणवत्ता नियंत्रण",
	"info.service.light":          "बिजली और स्ट्रीट लाइट",
	"info.service.light.desc":     "स्ट्रीट लाइट रखरखाव और विद्युत सेवाएं",
	"info.service.waste":          "कचरा प्रबंधन",
	"info.service.waste.desc":     "नियमित कचरा संग्रह और स्वच्छता सेवाएं",
	"info.service.roads":          "सड़क और यातायात",
	"info.service.roads.desc":     "सड़क रखरखाव और यातायात प्रबंधन",
	"info.service.health":         "स्वास्थ्य सेवाएं",
	"info.service.health.desc":    "सामुदायिक स्वास्थ्य केंद्र और टीकाकरण",
	"info.service.education":      "शिक्षा",
	"info.service.education.desc": "नगरपालिका स्कूल और शिक्षा कार्यक्रम",
	"info.dept.admin":             "प्रशासन विभाग",
	"info.dept.engineering":       "इंजीनियरिंग विभाग",
	"info.dept.revenue":           "राजस्व विभाग",
	"info.dept.health":            "स्वास्थ्य विभाग",
}
