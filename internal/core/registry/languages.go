package registry

// languages is the registry table in declaration order
var languages = [...]Language{
	// Indian scheduled languages
	{Code: "as", Name: "Assamese", Script: "Bengali", Family: "Indo-Aryan"},
	{Code: "bn", Name: "Bengali", Script: "Bengali", Family: "Indo-Aryan"},
	{Code: "bo", Name: "Bodo", Script: "Devanagari", Family: "Sino-Tibetan"},
	{Code: "doi", Name: "Dogri", Script: "Devanagari", Family: "Indo-Aryan"},
	{Code: "gu", Name: "Gujarati", Script: "Gujarati", Family: "Indo-Aryan"},
	{Code: "hi", Name: "Hindi", Script: "Devanagari", Family: "Indo-Aryan"},
	{Code: "kn", Name: "Kannada", Script: "Kannada", Family: "Dravidian"},
	{Code: "ks", Name: "Kashmiri", Script: "Perso-Arabic", Family: "Indo-Aryan"},
	{Code: "kok", Name: "Konkani", Script: "Devanagari", Family: "Indo-Aryan"},
	{Code: "mai", Name: "Maithili", Script: "Devanagari", Family: "Indo-Aryan"},
	{Code: "ml", Name: "Malayalam", Script: "Malayalam", Family: "Dravidian"},
	{Code: "mni", Name: "Manipuri", Script: "Bengali", Family: "Sino-Tibetan"},
	{Code: "mr", Name: "Marathi", Script: "Devanagari", Family: "Indo-Aryan"},
	{Code: "ne", Name: "Nepali", Script: "Devanagari", Family: "Indo-Aryan"},
	{Code: "or", Name: "Odia", Script: "Odia", Family: "Indo-Aryan"},
	{Code: "pa", Name: "Punjabi", Script: "Gurmukhi", Family: "Indo-Aryan"},
	{Code: "sa", Name: "Sanskrit", Script: "Devanagari", Family: "Indo-Aryan"},
	{Code: "sat", Name: "Santali", Script: "Ol Chiki", Family: "Austroasiatic"},
	{Code: "sd", Name: "Sindhi", Script: "Perso-Arabic", Family: "Indo-Aryan"},
	{Code: "si", Name: "Sinhala", Script: "Sinhala", Family: "Indo-Aryan"},
	{Code: "ta", Name: "Tamil", Script: "Tamil", Family: "Dravidian"},
	{Code: "te", Name: "Telugu", Script: "Telugu", Family: "Dravidian"},
	{Code: "ur", Name: "Urdu", Script: "Perso-Arabic", Family: "Indo-Aryan"},

	// Major world languages
	{Code: "en", Name: "English", Script: "Latin", Family: "Germanic"},
	{Code: "es", Name: "Spanish", Script: "Latin", Family: "Romance"},
	{Code: "fr", Name: "French", Script: "Latin", Family: "Romance"},
	{Code: "de", Name: "German", Script: "Latin", Family: "Germanic"},
	{Code: "it", Name: "Italian", Script: "Latin", Family: "Romance"},
	{Code: "pt", Name: "Portuguese", Script: "Latin", Family: "Romance"},
	{Code: "ru", Name: "Russian", Script: "Cyrillic", Family: "Slavic"},
	{Code: "zh", Name: "Chinese", Script: "CJK", Family: "Sino-Tibetan"},
	{Code: "ja", Name: "Japanese", Script: "Hiragana", Family: "Japonic"},
	{Code: "ko", Name: "Korean", Script: "Hangul", Family: "Koreanic"},
	{Code: "ar", Name: "Arabic", Script: "Arabic", Family: "Semitic"},
	{Code: "he", Name: "Hebrew", Script: "Hebrew", Family: "Semitic"},
	{Code: "fa", Name: "Persian", Script: "Perso-Arabic", Family: "Iranian"},
	{Code: "tr", Name: "Turkish", Script: "Latin", Family: "Turkic"},
	{Code: "vi", Name: "Vietnamese", Script: "Latin", Family: "Austroasiatic"},
	{Code: "th", Name: "Thai", Script: "Thai", Family: "Tai-Kadai"},
	{Code: "id", Name: "Indonesian", Script: "Latin", Family: "Austronesian"},
	{Code: "ms", Name: "Malay", Script: "Latin", Family: "Austronesian"},
	{Code: "sw", Name: "Swahili", Script: "Latin", Family: "Bantu"},
	{Code: "nl", Name: "Dutch", Script: "Latin", Family: "Germanic"},
	{Code: "pl", Name: "Polish", Script: "Latin", Family: "Slavic"},
	{Code: "uk", Name: "Ukrainian", Script: "Cyrillic", Family: "Slavic"},
	{Code: "cs", Name: "Czech", Script: "Latin", Family: "Slavic"},
	{Code: "ro", Name: "Romanian", Script: "Latin", Family: "Romance"},
	{Code: "hu", Name: "Hungarian", Script: "Latin", Family: "Uralic"},
	{Code: "fi", Name: "Finnish", Script: "Latin", Family: "Uralic"},
	{Code: "sv", Name: "Swedish", Script: "Latin", Family: "Germanic"},
	{Code: "no", Name: "Norwegian", Script: "Latin", Family: "Germanic"},
	{Code: "da", Name: "Danish", Script: "Latin", Family: "Germanic"},
	{Code: "el", Name: "Greek", Script: "Greek", Family: "Hellenic"},
	{Code: "bg", Name: "Bulgarian", Script: "Cyrillic", Family: "Slavic"},
	{Code: "hr", Name: "Croatian", Script: "Latin", Family: "Slavic"},
	{Code: "sk", Name: "Slovak", Script: "Latin", Family: "Slavic"},
	{Code: "lt", Name: "Lithuanian", Script: "Latin", Family: "Baltic"},
	{Code: "lv", Name: "Latvian", Script: "Latin", Family: "Baltic"},
	{Code: "et", Name: "Estonian", Script: "Latin", Family: "Uralic"},
	{Code: "sq", Name: "Albanian", Script: "Latin", Family: "Albanian"},
	{Code: "mk", Name: "Macedonian", Script: "Cyrillic", Family: "Slavic"},
	{Code: "sr", Name: "Serbian", Script: "Cyrillic", Family: "Slavic"},
	{Code: "sl", Name: "Slovenian", Script: "Latin", Family: "Slavic"},
	{Code: "af", Name: "Afrikaans", Script: "Latin", Family: "Germanic"},
	{Code: "ka", Name: "Georgian", Script: "Georgian", Family: "Kartvelian"},
	{Code: "hy", Name: "Armenian", Script: "Armenian", Family: "Armenian"},
	{Code: "az", Name: "Azerbaijani", Script: "Latin", Family: "Turkic"},
	{Code: "kk", Name: "Kazakh", Script: "Cyrillic", Family: "Turkic"},
	{Code: "uz", Name: "Uzbek", Script: "Latin", Family: "Turkic"},
	{Code: "km", Name: "Khmer", Script: "Khmer", Family: "Austroasiatic"},
	{Code: "lo", Name: "Lao", Script: "Lao", Family: "Tai-Kadai"},
	{Code: "my", Name: "Burmese", Script: "Myanmar", Family: "Sino-Tibetan"},
	{Code: "mn", Name: "Mongolian", Script: "Cyrillic", Family: "Mongolic"},
	{Code: "tl", Name: "Filipino", Script: "Latin", Family: "Austronesian"},
	{Code: "jv", Name: "Javanese", Script: "Latin", Family: "Austronesian"},
	{Code: "ceb", Name: "Cebuano", Script: "Latin", Family: "Austronesian"},
	{Code: "ha", Name: "Hausa", Script: "Latin", Family: "Afro-Asiatic"},
	{Code: "yo", Name: "Yoruba", Script: "Latin", Family: "Niger-Congo"},
	{Code: "ig", Name: "Igbo", Script: "Latin", Family: "Niger-Congo"},
	{Code: "am", Name: "Amharic", Script: "Ethiopic", Family: "Semitic"},
	{Code: "so", Name: "Somali", Script: "Latin", Family: "Afro-Asiatic"},
	{Code: "zu", Name: "Zulu", Script: "Latin", Family: "Bantu"},
	{Code: "xh", Name: "Xhosa", Script: "Latin", Family: "Bantu"},
	{Code: "ny", Name: "Chichewa", Script: "Latin", Family: "Bantu"},
	{Code: "mg", Name: "Malagasy", Script: "Latin", Family: "Austronesian"},
	{Code: "cy", Name: "Welsh", Script: "Latin", Family: "Celtic"},
	{Code: "ga", Name: "Irish", Script: "Latin", Family: "Celtic"},
	{Code: "eu", Name: "Basque", Script: "Latin", Family: "Language isolate"},
	{Code: "ca", Name: "Catalan", Script: "Latin", Family: "Romance"},
	{Code: "gl", Name: "Galician", Script: "Latin", Family: "Romance"},
	{Code: "eo", Name: "Esperanto", Script: "Latin", Family: "Constructed"},
	{Code: "la", Name: "Latin", Script: "Latin", Family: "Romance"},
	{Code: "mt", Name: "Maltese", Script: "Latin", Family: "Semitic"},
	{Code: "is", Name: "Icelandic", Script: "Latin", Family: "Germanic"},
	{Code: "be", Name: "Belarusian", Script: "Cyrillic", Family: "Slavic"},
	{Code: "tt", Name: "Tatar", Script: "Cyrillic", Family: "Turkic"},
	{Code: "ba", Name: "Bashkir", Script: "Cyrillic", Family: "Turkic"},
	{Code: "cv", Name: "Chuvash", Script: "Cyrillic", Family: "Turkic"},
}
