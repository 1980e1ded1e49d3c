package locale

import "github.com/brunnokenzokillaruna/careertrackpro-sub000/internal/types"

var tables = map[types.Language]Strings{
	types.LangEnglish: {
		Summary:            "Professional Summary",
		WorkExperience:     "Work Experience",
		Education:          "Education",
		Skills:             "Skills",
		Certifications:     "Certifications",
		Projects:           "Projects",
		Languages:          "Languages",
		Courses:            "Courses",
		RelevantKeywords:   "Relevant Keywords",
		Technologies:       "Technologies",
		ContactInformation: "Contact Information",
		Email:              "Email",
		Phone:              "Phone",
		Location:           "Location",
		LinkedIn:           "LinkedIn",
		Portfolio:          "Portfolio",
		Present:            "Present",
		DefaultSummary:     "Experienced professional seeking new opportunities to apply proven skills.",
		TailoredFor:        "Resume tailored for the %s position at %s.",
		References:         "References available upon request.",
		DearHiringManager:  "Dear Hiring Manager,",
		CoverLetterIntro:   "I am writing to express my strong interest in the %s position at %s.",
		WithBackground:     "With my background and hands-on experience, I am confident I can contribute from day one.",
		SkillsSentence:     "My key strengths include %s.",
		RecentRole:         "In my most recent role as %s at %s, I delivered results directly relevant to this position.",
		Enthusiasm:         "I would be excited to bring this experience to %s.",
		AttachedResume:     "Please find my resume attached for your consideration.",
		ThankYou:           "Thank you for considering my application.",
		LookForward:        "I look forward to hearing from you.",
		Sincerely:          "Sincerely,",
	},
	types.LangFrench: {
		Summary:            "Résumé professionnel",
		WorkExperience:     "Expérience professionnelle",
		Education:          "Formation",
		Skills:             "Compétences",
		Certifications:     "Certifications",
		Projects:           "Projets",
		Languages:          "Langues",
		Courses:            "Cours",
		RelevantKeywords:   "Mots-clés pertinents",
		Technologies:       "Technologies",
		ContactInformation: "Coordonnées",
		Email:              "E-mail",
		Phone:              "Téléphone",
		Location:           "Localisation",
		LinkedIn:           "LinkedIn",
		Portfolio:          "Portfolio",
		Present:            "Présent",
		DefaultSummary:     "Professionnel expérimenté à la recherche de nouvelles opportunités pour mettre à profit des compétences éprouvées.",
		TailoredFor:        "CV adapté au poste de %s chez %s.",
		References:         "Références disponibles sur demande.",
		DearHiringManager:  "Madame, Monsieur,",
		CoverLetterIntro:   "Je vous écris pour exprimer mon vif intérêt pour le poste de %s chez %s.",
		WithBackground:     "Fort de mon parcours et de mon expérience pratique, je suis convaincu de pouvoir contribuer dès le premier jour.",
		SkillsSentence:     "Mes principaux atouts sont %s.",
		RecentRole:         "Dans mon dernier poste de %s chez %s, j'ai obtenu des résultats directement pertinents pour cette fonction.",
		Enthusiasm:         "Je serais ravi d'apporter cette expérience à %s.",
		AttachedResume:     "Veuillez trouver mon CV ci-joint pour votre considération.",
		ThankYou:           "Je vous remercie de l'attention portée à ma candidature.",
		LookForward:        "Dans l'attente de votre réponse.",
		Sincerely:          "Cordialement,",
	},
	types.LangPortuguese: {
		Summary:            "Resumo profissional",
		WorkExperience:     "Experiência profissional",
		Education:          "Educação",
		Skills:             "Habilidades",
		Certifications:     "Certificações",
		Projects:           "Projetos",
		Languages:          "Idiomas",
		Courses:            "Cursos",
		RelevantKeywords:   "Palavras-chave relevantes",
		Technologies:       "Tecnologias",
		ContactInformation: "Informações de contato",
		Email:              "E-mail",
		Phone:              "Telefone",
		Location:           "Localização",
		LinkedIn:           "LinkedIn",
		Portfolio:          "Portfólio",
		Present:            "Atual",
		DefaultSummary:     "Profissional experiente em busca de novas oportunidades para aplicar habilidades comprovadas.",
		TailoredFor:        "Currículo adaptado para a vaga de %s na %s.",
		References:         "Referências disponíveis mediante solicitação.",
		DearHiringManager:  "Prezado(a) recrutador(a),",
		CoverLetterIntro:   "Escrevo para manifestar meu grande interesse na vaga de %s na %s.",
		WithBackground:     "Com minha trajetória e experiência prática, estou confiante de que posso contribuir desde o primeiro dia.",
		SkillsSentence:     "Meus principais pontos fortes incluem %s.",
		RecentRole:         "No meu cargo mais recente como %s na %s, entreguei resultados diretamente relevantes para esta posição.",
		Enthusiasm:         "Ficaria entusiasmado em levar essa experiência para a %s.",
		AttachedResume:     "Segue meu currículo em anexo para sua apreciação.",
		ThankYou:           "Agradeço a atenção dispensada à minha candidatura.",
		LookForward:        "Aguardo seu retorno.",
		Sincerely:          "Atenciosamente,",
	},
	types.LangSpanish: {
		Summary:            "Resumen profesional",
		WorkExperience:     "Experiencia laboral",
		Education:          "Educación",
		Skills:             "Habilidades",
		Certifications:     "Certificaciones",
		Projects:           "Proyectos",
		Languages:          "Idiomas",
		Courses:            "Cursos",
		RelevantKeywords:   "Palabras clave relevantes",
		Technologies:       "Tecnologías",
		ContactInformation: "Información de contacto",
		Email:              "Correo electrónico",
		Phone:              "Teléfono",
		Location:           "Ubicación",
		LinkedIn:           "LinkedIn",
		Portfolio:          "Portafolio",
		Present:            "Actualidad",
		DefaultSummary:     "Profesional con experiencia en busca de nuevas oportunidades para aplicar habilidades demostradas.",
		TailoredFor:        "Currículum adaptado al puesto de %s en %s.",
		References:         "Referencias disponibles a petición.",
		DearHiringManager:  "Estimado/a responsable de selección:",
		CoverLetterIntro:   "Le escribo para expresar mi gran interés en el puesto de %s en %s.",
		WithBackground:     "Con mi trayectoria y experiencia práctica, confío en poder aportar desde el primer día.",
		SkillsSentence:     "Mis principales fortalezas incluyen %s.",
		RecentRole:         "En mi puesto más reciente como %s en %s, logré resultados directamente relevantes para esta posición.",
		Enthusiasm:         "Me entusiasmaría aportar esta experiencia a %s.",
		AttachedResume:     "Adjunto mi currículum para su consideración.",
		ThankYou:           "Gracias por considerar mi candidatura.",
		LookForward:        "Quedo a la espera de su respuesta.",
		Sincerely:          "Atentamente,",
	},
	types.LangGerman: {
		Summary:            "Berufliches Profil",
		WorkExperience:     "Berufserfahrung",
		Education:          "Ausbildung",
		Skills:             "Kenntnisse",
		Certifications:     "Zertifizierungen",
		Projects:           "Projekte",
		Languages:          "Sprachen",
		Courses:            "Kurse",
		RelevantKeywords:   "Relevante Schlüsselwörter",
		Technologies:       "Technologien",
		ContactInformation: "Kontaktdaten",
		Email:              "E-Mail",
		Phone:              "Telefon",
		Location:           "Standort",
		LinkedIn:           "LinkedIn",
		Portfolio:          "Portfolio",
		Present:            "Heute",
		DefaultSummary:     "Erfahrene Fachkraft auf der Suche nach neuen Möglichkeiten, bewährte Fähigkeiten einzusetzen.",
		TailoredFor:        "Lebenslauf zugeschnitten auf die Position %s bei %s.",
		References:         "Referenzen auf Anfrage erhältlich.",
		DearHiringManager:  "Sehr geehrte Damen und Herren,",
		CoverLetterIntro:   "hiermit bewerbe ich mich mit großem Interesse auf die Position %s bei %s.",
		WithBackground:     "Mit meinem Werdegang und meiner praktischen Erfahrung bin ich überzeugt, vom ersten Tag an beitragen zu können.",
		SkillsSentence:     "Zu meinen wichtigsten Stärken zählen %s.",
		RecentRole:         "In meiner letzten Position als %s bei %s habe ich Ergebnisse erzielt, die für diese Stelle unmittelbar relevant sind.",
		Enthusiasm:         "Ich würde diese Erfahrung gerne bei %s einbringen.",
		AttachedResume:     "Meinen Lebenslauf finden Sie im Anhang.",
		ThankYou:           "Vielen Dank für die Berücksichtigung meiner Bewerbung.",
		LookForward:        "Ich freue mich auf Ihre Rückmeldung.",
		Sincerely:          "Mit freundlichen Grüßen,",
	},
	types.LangChinese: {
		Summary:            "个人简介",
		WorkExperience:     "工作经历",
		Education:          "教育背景",
		Skills:             "技能",
		Certifications:     "证书",
		Projects:           "项目经验",
		Languages:          "语言",
		Courses:            "课程",
		RelevantKeywords:   "相关关键词",
		Technologies:       "技术栈",
		ContactInformation: "联系方式",
		Email:              "邮箱",
		Phone:              "电话",
		Location:           "所在地",
		LinkedIn:           "领英",
		Portfolio:          "作品集",
		Present:            "至今",
		DefaultSummary:     "经验丰富的专业人士，期待在新的机会中发挥所长。",
		TailoredFor:        "本简历针对%s职位（%s公司）定制。",
		References:         "如需推荐人信息，可随时提供。",
		DearHiringManager:  "尊敬的招聘负责人：",
		CoverLetterIntro:   "我谨此表达对贵公司%s职位（%s）的浓厚兴趣。",
		WithBackground:     "凭借我的专业背景和实践经验，我有信心从入职第一天起即可做出贡献。",
		SkillsSentence:     "我的核心优势包括%s。",
		RecentRole:         "在我最近担任%s（%s）期间，我取得了与该职位直接相关的成果。",
		Enthusiasm:         "我非常期待能将这些经验带到%s。",
		AttachedResume:     "随函附上我的简历，供您参考。",
		ThankYou:           "感谢您考虑我的申请。",
		LookForward:        "期待您的回复。",
		Sincerely:          "此致敬礼，",
	},
	types.LangJapanese: {
		Summary:            "職務要約",
		WorkExperience:     "職務経歴",
		Education:          "学歴",
		Skills:             "スキル",
		Certifications:     "資格",
		Projects:           "プロジェクト",
		Languages:          "言語",
		Courses:            "受講コース",
		RelevantKeywords:   "関連キーワード",
		Technologies:       "使用技術",
		ContactInformation: "連絡先",
		Email:              "メール",
		Phone:              "電話",
		Location:           "所在地",
		LinkedIn:           "LinkedIn",
		Portfolio:          "ポートフォリオ",
		Present:            "現在",
		DefaultSummary:     "豊富な経験を持つプロフェッショナルとして、実績あるスキルを活かせる新たな機会を求めています。",
		TailoredFor:        "本履歴書は%s（%s）のポジション向けに作成されています。",
		References:         "推薦者情報はご要望に応じて提出いたします。",
		DearHiringManager:  "採用ご担当者様",
		CoverLetterIntro:   "%s（%s）のポジションに強い関心を持ち、応募いたします。",
		WithBackground:     "これまでの経歴と実務経験により、初日から貢献できると確信しております。",
		SkillsSentence:     "私の主な強みは%sです。",
		RecentRole:         "直近の%s（%s）としての職務では、本ポジションに直結する成果を上げました。",
		Enthusiasm:         "この経験を%sで活かせることを楽しみにしております。",
		AttachedResume:     "履歴書を添付いたしますので、ご査収ください。",
		ThankYou:           "ご検討いただきありがとうございます。",
		LookForward:        "ご連絡をお待ちしております。",
		Sincerely:          "敬具",
	},
}
