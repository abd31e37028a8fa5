package constant

const (
	MoodInsightFallbackLow = "It sounds like today has been challenging, and that's okay. Pregnancy brings so many changes, and 1 in 4 women experience difficult emotions during this time. Be gentle with yourself, and consider reaching out to someone you trust or your healthcare provider if these feelings persist. You're not alone in this."

	MoodInsightFallbackNeutral = "Thank you for checking in today. Some days feel more neutral than others, and that's completely normal during pregnancy. Take a moment to do something small that brings you comfort - maybe a warm drink, a few minutes of quiet time, or a gentle stretch."

	MoodInsightFallbackGood = "It's wonderful to hear you're feeling good today! These positive moments are worth celebrating. Consider jotting down what's contributing to this feeling so you can revisit it on harder days. You're doing great on this journey."

	EPDSInsightFallbackHigh = "Thank you for completing this screening. Your score suggests you may be experiencing symptoms of depression, which affects 1 in 4 women during pregnancy and postpartum. This is very treatable, and we encourage you to speak with your healthcare provider soon. Remember, reaching out for help is a sign of strength, not weakness."

	EPDSInsightFallbackModerate = "Thank you for completing this screening. Your score is in the borderline range, which means it's worth keeping an eye on how you're feeling. Consider discussing these results with your healthcare provider at your next appointment. In the meantime, continue with self-care and don't hesitate to reach out if things feel harder."

	EPDSInsightFallbackLow = "Thank you for completing this screening. Your score is within the normal range, which is great news. Keep up with your self-care routine and continue to check in with yourself regularly. Remember, it's normal to have ups and downs during pregnancy, and support is always available if you need it."
)
