package prompt

import "fmt"

// Enhancement rewrites a plain product description into a technical
// photography prompt for the external image generator.
func Enhancement(description, style string) string {
	return fmt.Sprintf(`You are a professional photography prompter for high-end commercial products.
Convert this product description: "%s" into a technical 8k photorealistic prompt for stable diffusion.
Style: "%s".

Guidelines:
- Focus on lighting (cinematic, rim lighting, softbox).
- Focus on textures (water droplets, wood grain, glass reflections).
- Set a premium environment (marble surface, blurred bokeh background).
- Colors: Moody, vibrant, and professional.

IMPORTANT: OUTPUT ONLY THE ENHANCED PROMPT IN ENGLISH. NO INTRO, NO QUOTES, NO MARKDOWN.`, description, style)
}

// VisionRecreation is sent together with the uploaded product photo. The model
// describes the product, then writes a prompt that recreates it in the
// requested setting.
func VisionRecreation(style string) string {
	return fmt.Sprintf(`Analyze this product image in extreme detail.
Describe the product's shape, color, material, and key features.
Then, write a high-end, 8k photorealistic prompt for Stable Diffusion to RECREATE this exact product but in a "%s" setting.

Guidelines:
- Keep the product looking exactly as described.
- Improve the lighting (cinematic, professional studio).
- Improve the background (blurred, premium context).
- Output ONLY the prompt text. No markdown, no "Here is the prompt".`, style)
}
