package content

import "github.com/smilesofhope/hopecms/internal/models"

// SeedPosts returns the bundled default mission stories. They are the initial
// repository state before any persisted data is loaded, and the fallback when
// the store is unavailable.
func SeedPosts() []models.Post {
	return []models.Post{
		{
			ID:       "1",
			Title:    "Dental Screening And Oral Health Promotion",
			Date:     "2026-02-07",
			Category: models.CategoryUpcoming,
			Excerpt:  "Join us for our upcoming comprehensive dental screening and educational session aimed at promoting oral hygiene among children in Lagos.",
			Image:    "https://images.unsplash.com/photo-1488521787991-ed7bbaae773c?q=80&w=800&auto=format&fit=crop",
			Content: `Our upcoming mission on February 7th, 2026, represents a significant milestone in our journey to improve pediatric oral health across Nigeria. We will be deploying a team of specialized pediatric dentists and community health workers to provide free comprehensive screenings for over 300 children in the local community.

The program includes:
- Professional dental check-ups for all participating children.
- Application of fluoride varnish to help prevent tooth decay.
- Interactive workshops for parents on effective home care routines.
- Distribution of oral hygiene kits containing fluoride toothpaste and age-appropriate brushes.

We believe that early intervention is the key to preventing long-term dental issues. By engaging with both children and their primary caregivers, we create a sustainable environment for healthy smiles to flourish.`,
			Gallery: []string{
				"https://images.unsplash.com/photo-1488521787991-ed7bbaae773c?q=80&w=800&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1588776814546-1ffcf47267a5?q=80&w=800&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1576091160550-2173dba999ef?q=80&w=800&auto=format&fit=crop",
			},
		},
		{
			ID:       "2",
			Title:    "5 Tips for Preventing Early Childhood Caries",
			Date:     "2024-10-15",
			Category: models.CategoryHealthTip,
			Excerpt:  "Simple daily habits for parents to ensure their children grow up with strong, healthy teeth and confident smiles.",
			Image:    "https://images.unsplash.com/photo-1588776814546-1ffcf47267a5?q=80&w=800&auto=format&fit=crop",
			Content: `Oral health is a vital component of a child's overall wellbeing. Early childhood caries (ECC) can lead to pain, infection, and potential development issues if left untreated. Here are five essential tips every parent should know:

1. **Start Early**: Begin cleaning your baby's mouth even before the first tooth appears by wiping the gums with a clean, damp cloth.
2. **Brush Twice Daily**: Once teeth emerge, use a small, soft-bristled toothbrush and a smear of fluoride toothpaste twice a day.
3. **Smart Snacking**: Limit sugary drinks and sticky sweets. Encourage water and healthy snacks like fruits and vegetables.
4. **Regular Check-ups**: The first dental visit should happen by the child's first birthday or when the first tooth appears.
5. **Nightly Routine**: Never put a child to bed with a bottle containing anything other than water to prevent "bottle rot."

By following these simple steps, you can set your child on the path to a lifetime of healthy smiles.`,
			Gallery: []string{
				"https://images.unsplash.com/photo-1588776814546-1ffcf47267a5?q=80&w=800&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1488521787991-ed7bbaae773c?q=80&w=800&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1559839734-2b71f1536783?q=80&w=800&auto=format&fit=crop",
			},
		},
		{
			ID:       "3",
			Title:    "New Partnership with Local Community Health Workers",
			Date:     "2024-10-20",
			Category: models.CategoryUpcoming,
			Excerpt:  "We are expanding our reach by training 50 new community health workers to recognize early signs of oral disease.",
			Image:    "https://images.unsplash.com/photo-1576091160550-2173dba999ef?q=80&w=800&auto=format&fit=crop",
			Content: `Smiles of Hope for Children Foundation is proud to announce a new partnership initiative focused on capacity building within the primary healthcare sector. We have successfully launched a training program for 50 community health workers in underserved regions.

These frontline workers are being trained to:
- Identify early signs of dental caries and gum disease in children.
- Deliver basic oral health education to families during home visits.
- Provide appropriate referrals to dental professionals for complex cases.
- Monitor the use of fluoride toothpaste within their assigned communities.

This partnership is a cornerstone of our Theory of Change. By empowering local health workers who already have the trust of their communities, we can significantly scale our impact and ensure that oral health is integrated into general child healthcare services.`,
			Gallery: []string{
				"https://images.unsplash.com/photo-1576091160550-2173dba999ef?q=80&w=800&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1559027615-cd9d732ffadd?q=80&w=800&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1532629345422-7515f3d16bb6?q=80&w=800&auto=format&fit=crop",
			},
		},
	}
}
